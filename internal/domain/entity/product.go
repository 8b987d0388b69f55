package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product es la instantánea de un producto tal como la entrega la API de inventario.
// Quantity y MinStock nunca son negativos; el estado de stock se deriva al leer.
type Product struct {
	ID           int64
	Name         string
	SKU          string // código único por producto
	CategoryID   *int64 // nil si no tiene categoría
	CategoryName string
	Quantity     int
	MinStock     int
	Price        decimal.Decimal // precio de venta unitario
	Cost         decimal.Decimal // costo unitario
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasCategory indica si el producto está asociado a una categoría.
func (p Product) HasCategory() bool {
	return p.CategoryID != nil || p.CategoryName != ""
}
