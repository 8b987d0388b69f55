package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/lojinha-control-api/internal/application/usecase"
	"github.com/jhoicas/lojinha-control-api/internal/domain/repository"
	"github.com/jhoicas/lojinha-control-api/pkg/logger"
)

type importer struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	log        *logger.Logger
}

type importResult struct {
	Created       int
	Skipped       int
	NewCategories int
}

// run crea en la API los productos cuyo SKU no existe todavía.
// Las categorías se resuelven por nombre (sin distinguir mayúsculas) y las faltantes
// se crean rotando la paleta de colores.
func (im importer) run(ctx context.Context, rows []productRow) (importResult, error) {
	var res importResult

	existing, err := im.products.List(ctx)
	if err != nil {
		return res, fmt.Errorf("listar productos: %w", err)
	}
	skus := make(map[string]bool, len(existing))
	for _, p := range existing {
		skus[strings.ToLower(p.SKU)] = true
	}

	cats, err := im.categories.List(ctx)
	if err != nil {
		return res, fmt.Errorf("listar categorías: %w", err)
	}
	catIDs := make(map[string]int64, len(cats))
	for _, c := range cats {
		catIDs[strings.ToLower(c.Name)] = c.ID
	}

	for _, row := range rows {
		key := strings.ToLower(row.SKU)
		if skus[key] {
			res.Skipped++
			im.log.Info().Int("line", row.Line).Str("sku", row.SKU).Msg("sku ya existe, se omite")
			continue
		}

		var categoryID *int64
		if row.Category != "" {
			id, ok := catIDs[strings.ToLower(row.Category)]
			if !ok {
				color := usecase.Palette[len(catIDs)%len(usecase.Palette)].Value
				c, err := im.categories.Create(ctx, row.Category, color)
				if err != nil {
					return res, fmt.Errorf("línea %d: crear categoría %q: %w", row.Line, row.Category, err)
				}
				id = c.ID
				catIDs[strings.ToLower(row.Category)] = id
				res.NewCategories++
			}
			categoryID = &id
		}

		_, err := im.products.Create(ctx, repository.ProductWrite{
			Name:       row.Name,
			SKU:        row.SKU,
			Quantity:   row.Quantity,
			MinStock:   row.MinStock,
			Price:      row.Price,
			Cost:       row.Cost,
			CategoryID: categoryID,
		})
		if err != nil {
			return res, fmt.Errorf("línea %d: crear producto %s: %w", row.Line, row.SKU, err)
		}
		skus[key] = true
		res.Created++
	}
	return res, nil
}
