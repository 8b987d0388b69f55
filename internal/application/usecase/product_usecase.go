package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/lojinha-control-api/internal/application/dto"
	"github.com/jhoicas/lojinha-control-api/internal/domain"
	"github.com/jhoicas/lojinha-control-api/internal/domain/entity"
	"github.com/jhoicas/lojinha-control-api/internal/domain/inventory"
	"github.com/jhoicas/lojinha-control-api/internal/domain/repository"
)

// ProductUseCase casos de uso de productos. El stock se ajusta vía movimientos o edición directa.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List filtra, ordena y pagina la instantánea de productos.
func (uc *ProductUseCase) List(ctx context.Context, f dto.ProductFilter) (*dto.ProductListResponse, error) {
	var status inventory.StockStatus
	if f.Status != "" {
		s, ok := inventory.ParseStockStatus(strings.ToUpper(strings.TrimSpace(f.Status)))
		if !ok {
			return nil, fmt.Errorf("status %q desconocido: %w", f.Status, domain.ErrInvalidArgument)
		}
		status = s
	}
	less, err := productOrder(f.Sort, f.Order)
	if err != nil {
		return nil, err
	}

	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))
	category := strings.TrimSpace(f.Category)
	filtered := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.SKU), search) {
			continue
		}
		if !matchesCategory(p, category) {
			continue
		}
		if status != "" && inventory.ClassifyProduct(p) != status {
			continue
		}
		filtered = append(filtered, p)
	}
	if less != nil {
		sort.SliceStable(filtered, func(i, j int) bool { return less(filtered[i], filtered[j]) })
	}

	f.DefaultPage()
	from, to := f.Window(len(filtered))
	items := make([]dto.ProductResponse, 0, to-from)
	for _, p := range filtered[from:to] {
		items = append(items, ToProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset, Total: len(filtered)},
	}, nil
}

func matchesCategory(p entity.Product, category string) bool {
	if category == "" || strings.EqualFold(category, "all") {
		return true
	}
	name := p.CategoryName
	if name == "" {
		name = inventory.UncategorizedName
	}
	return strings.EqualFold(name, category)
}

func productOrder(field, order string) (func(a, b entity.Product) bool, error) {
	desc := false
	switch strings.ToLower(order) {
	case "", "asc":
	case "desc":
		desc = true
	default:
		return nil, fmt.Errorf("order %q inválido (asc|desc): %w", order, domain.ErrInvalidArgument)
	}

	var less func(a, b entity.Product) bool
	switch strings.ToLower(field) {
	case "":
		return nil, nil
	case "name":
		less = func(a, b entity.Product) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case "quantity":
		less = func(a, b entity.Product) bool { return a.Quantity < b.Quantity }
	case "price":
		less = func(a, b entity.Product) bool { return a.Price.LessThan(b.Price) }
	default:
		return nil, fmt.Errorf("sort %q inválido (name|quantity|price): %w", field, domain.ErrInvalidArgument)
	}
	if desc {
		return func(a, b entity.Product) bool { return less(b, a) }, nil
	}
	return less, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("id de producto inválido: %w", domain.ErrInvalidInput)
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := ToProductResponse(*p)
	return &out, nil
}

// Create valida y da de alta un producto. Si no viene cost pero sí batch_cost,
// el costo unitario se deriva del lote.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	cost := decimal.Zero
	switch {
	case in.Cost != nil:
		cost = *in.Cost
	case in.BatchCost != nil:
		unit, err := inventory.DeriveUnitCost(in.Quantity, *in.BatchCost)
		if err != nil {
			return nil, err
		}
		cost = unit
	}

	w := repository.ProductWrite{
		Name:       strings.TrimSpace(in.Name),
		SKU:        strings.TrimSpace(in.SKU),
		Quantity:   in.Quantity,
		MinStock:   in.MinStock,
		Price:      in.Price,
		Cost:       cost,
		CategoryID: in.CategoryID,
	}
	if err := validateProduct(w); err != nil {
		return nil, err
	}
	p, err := uc.repo.Create(ctx, w)
	if err != nil {
		return nil, err
	}
	out := ToProductResponse(*p)
	return &out, nil
}

// Update reemplaza los datos del producto.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("id de producto inválido: %w", domain.ErrInvalidInput)
	}
	w := repository.ProductWrite{
		Name:       strings.TrimSpace(in.Name),
		SKU:        strings.TrimSpace(in.SKU),
		Quantity:   in.Quantity,
		MinStock:   in.MinStock,
		Price:      in.Price,
		Cost:       in.Cost,
		CategoryID: in.CategoryID,
	}
	if err := validateProduct(w); err != nil {
		return nil, err
	}
	p, err := uc.repo.Update(ctx, id, w)
	if err != nil {
		return nil, err
	}
	out := ToProductResponse(*p)
	return &out, nil
}

// Delete elimina un producto.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("id de producto inválido: %w", domain.ErrInvalidInput)
	}
	return uc.repo.Delete(ctx, id)
}

// UnitCost calcula el costo unitario de un lote (sin I/O).
func (uc *ProductUseCase) UnitCost(in dto.UnitCostRequest) (*dto.UnitCostResponse, error) {
	unit, err := inventory.DeriveUnitCost(in.BatchQuantity, in.TotalCost)
	if err != nil {
		return nil, err
	}
	return &dto.UnitCostResponse{UnitCost: unit}, nil
}

func validateProduct(w repository.ProductWrite) error {
	switch {
	case w.Name == "":
		return fmt.Errorf("name es obligatorio: %w", domain.ErrInvalidInput)
	case w.SKU == "":
		return fmt.Errorf("sku es obligatorio: %w", domain.ErrInvalidInput)
	case w.Quantity < 0:
		return fmt.Errorf("quantity no puede ser negativa: %w", domain.ErrInvalidInput)
	case w.MinStock < 0:
		return fmt.Errorf("min_stock no puede ser negativo: %w", domain.ErrInvalidInput)
	case w.Price.IsNegative():
		return fmt.Errorf("price no puede ser negativo: %w", domain.ErrInvalidInput)
	case w.Cost.IsNegative():
		return fmt.Errorf("cost no puede ser negativo: %w", domain.ErrInvalidInput)
	case w.CategoryID != nil && *w.CategoryID <= 0:
		return fmt.Errorf("category_id inválido: %w", domain.ErrInvalidInput)
	}
	return nil
}
