package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/lojinha-control-api/internal/domain/entity"
	"github.com/jhoicas/lojinha-control-api/internal/domain/inventory"
	"github.com/jhoicas/lojinha-control-api/internal/domain/repository"
)

// Sources repositorios de los que se arma la instantánea del inventario.
type Sources struct {
	Products   repository.ProductRepository
	Categories repository.CategoryRepository
	Movements  repository.StockMovementRepository
}

type snapshot struct {
	products   []entity.Product
	categories []entity.Category
	movements  []entity.StockMovement
}

// fetch lee las tres colecciones en paralelo; el primer error cancela las demás.
func (s Sources) fetch(ctx context.Context) (*snapshot, error) {
	var snap snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products, err := s.Products.List(gctx)
		if err != nil {
			return fmt.Errorf("productos: %w", err)
		}
		snap.products = products
		return nil
	})
	g.Go(func() error {
		categories, err := s.Categories.List(gctx)
		if err != nil {
			return fmt.Errorf("categorías: %w", err)
		}
		snap.categories = categories
		return nil
	})
	g.Go(func() error {
		movements, err := s.Movements.List(gctx)
		if err != nil {
			return fmt.Errorf("movimientos: %w", err)
		}
		snap.movements = movements
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *snapshot) colorByCategory() map[string]string {
	colors := make(map[string]string, len(s.categories))
	for _, c := range s.categories {
		colors[c.Name] = c.Color
	}
	return colors
}

// restockQueue productos que necesitan reposición: menor ratio primero,
// luego por gravedad y nombre. Sin stock mínimo el ratio cuenta como 0.
func restockQueue(products []entity.Product) []entity.Product {
	out := make([]entity.Product, 0)
	for _, p := range products {
		if inventory.ClassifyProduct(p).NeedsRestock() {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, _ := inventory.StockRatio(out[i].Quantity, out[i].MinStock)
		rj, _ := inventory.StockRatio(out[j].Quantity, out[j].MinStock)
		if !ri.Equal(rj) {
			return ri.LessThan(rj)
		}
		si, sj := inventory.ClassifyProduct(out[i]).Severity(), inventory.ClassifyProduct(out[j]).Severity()
		if si != sj {
			return si < sj
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// sameDay compara fechas de calendario en loc.
func sameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
