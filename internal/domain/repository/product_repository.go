package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/lojinha-control-api/internal/domain/entity"
)

// ProductRepository define el puerto hacia los productos de la API de inventario (DIP).
// La API es la dueña de los datos; aquí solo se leen instantáneas y se delegan cambios.
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	// GetByID devuelve domain.ErrNotFound si el producto no existe.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, in ProductWrite) (*entity.Product, error)
	Update(ctx context.Context, id int64, in ProductWrite) (*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}

// ProductWrite datos de alta/edición de un producto tal como los acepta la API.
type ProductWrite struct {
	Name       string
	SKU        string
	Quantity   int
	MinStock   int
	Price      decimal.Decimal
	Cost       decimal.Decimal
	CategoryID *int64
}
