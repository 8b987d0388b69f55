package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/lojinha-control-api/internal/application/dto"
	"github.com/jhoicas/lojinha-control-api/internal/domain/entity"
	"github.com/jhoicas/lojinha-control-api/internal/domain/inventory"
	"github.com/jhoicas/lojinha-control-api/pkg/money"
)

// ToProductResponse mapea el producto y deriva su estado de stock.
func ToProductResponse(p entity.Product) dto.ProductResponse {
	status := inventory.ClassifyProduct(p)
	category := p.CategoryName
	if category == "" {
		category = inventory.UncategorizedName
	}
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		CategoryID:  p.CategoryID,
		Category:    category,
		Quantity:    p.Quantity,
		MinStock:    p.MinStock,
		Price:       p.Price,
		Cost:        p.Cost,
		StockValue:  money.FromCents(money.ToCents(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))),
		Status:      string(status),
		StatusLabel: status.Label(),
		StockRatio:  ratioPtr(p.Quantity, p.MinStock),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToMovementResponse mapea un movimiento de stock.
func ToMovementResponse(m entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:             m.ID,
		ProductID:      m.ProductID,
		ProductName:    m.ProductName,
		Type:           string(m.Type),
		Quantity:       m.Quantity,
		SignedQuantity: m.SignedQuantity(),
		Reason:         m.Reason,
		CreatedAt:      m.CreatedAt,
	}
}

// ToCategoryResponse mapea una categoría.
func ToCategoryResponse(c entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{ID: c.ID, Name: c.Name, Color: c.Color, ProductCount: c.ProductCount}
}

func ratioPtr(quantity, minStock int) *decimal.Decimal {
	r, ok := inventory.StockRatio(quantity, minStock)
	if !ok {
		return nil
	}
	return &r
}
