package cache

import (
	"context"
	"time"

	"github.com/jhoicas/lojinha-control-api/internal/domain/entity"
	"github.com/jhoicas/lojinha-control-api/internal/domain/repository"
	"github.com/jhoicas/lojinha-control-api/pkg/logger"
)

var (
	_ repository.ProductRepository       = (*ProductRepository)(nil)
	_ repository.CategoryRepository      = (*CategoryRepository)(nil)
	_ repository.StockMovementRepository = (*StockMovementRepository)(nil)
)

// ProductRepository cachea List; altas, ediciones y bajas invalidan el listado.
type ProductRepository struct {
	next repository.ProductRepository
	snap snapshots
}

// NewProductRepository decora next con la caché.
func NewProductRepository(next repository.ProductRepository, store Store, ttl time.Duration, log *logger.Logger) *ProductRepository {
	return &ProductRepository{next: next, snap: snapshots{store: store, ttl: ttl, log: log}}
}

func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	return load(ctx, r.snap, KeyProducts, r.next.List)
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return r.next.GetByID(ctx, id)
}

func (r *ProductRepository) Create(ctx context.Context, in repository.ProductWrite) (*entity.Product, error) {
	defer r.snap.invalidate(ctx, KeyProducts)
	return r.next.Create(ctx, in)
}

func (r *ProductRepository) Update(ctx context.Context, id int64, in repository.ProductWrite) (*entity.Product, error) {
	defer r.snap.invalidate(ctx, KeyProducts)
	return r.next.Update(ctx, id, in)
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	defer r.snap.invalidate(ctx, KeyProducts)
	return r.next.Delete(ctx, id)
}

// CategoryRepository cachea List; Create invalida el listado.
type CategoryRepository struct {
	next repository.CategoryRepository
	snap snapshots
}

// NewCategoryRepository decora next con la caché.
func NewCategoryRepository(next repository.CategoryRepository, store Store, ttl time.Duration, log *logger.Logger) *CategoryRepository {
	return &CategoryRepository{next: next, snap: snapshots{store: store, ttl: ttl, log: log}}
}

func (r *CategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	return load(ctx, r.snap, KeyCategories, r.next.List)
}

func (r *CategoryRepository) Create(ctx context.Context, name, color string) (*entity.Category, error) {
	defer r.snap.invalidate(ctx, KeyCategories)
	return r.next.Create(ctx, name, color)
}

// StockMovementRepository cachea List; un movimiento nuevo cambia el stock,
// así que invalida también el listado de productos.
type StockMovementRepository struct {
	next repository.StockMovementRepository
	snap snapshots
}

// NewStockMovementRepository decora next con la caché.
func NewStockMovementRepository(next repository.StockMovementRepository, store Store, ttl time.Duration, log *logger.Logger) *StockMovementRepository {
	return &StockMovementRepository{next: next, snap: snapshots{store: store, ttl: ttl, log: log}}
}

func (r *StockMovementRepository) List(ctx context.Context) ([]entity.StockMovement, error) {
	return load(ctx, r.snap, KeyMovements, r.next.List)
}

func (r *StockMovementRepository) Create(ctx context.Context, in repository.StockMovementWrite) (*entity.StockMovement, error) {
	defer r.snap.invalidate(ctx, KeyProducts, KeyMovements)
	return r.next.Create(ctx, in)
}
