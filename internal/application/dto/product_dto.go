package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Si Cost viene vacío y BatchCost no, el costo unitario se deriva de BatchCost / Quantity.
type CreateProductRequest struct {
	Name       string           `json:"name"`
	SKU        string           `json:"sku"`
	Quantity   int              `json:"quantity"`
	MinStock   int              `json:"min_stock"`
	Price      decimal.Decimal  `json:"price"`
	Cost       *decimal.Decimal `json:"cost"`
	BatchCost  *decimal.Decimal `json:"batch_cost"` // costo total del lote
	CategoryID *int64           `json:"category_id"`
}

// UpdateProductRequest entrada para editar un producto (reemplazo completo, como la API).
type UpdateProductRequest struct {
	Name       string          `json:"name"`
	SKU        string          `json:"sku"`
	Quantity   int             `json:"quantity"`
	MinStock   int             `json:"min_stock"`
	Price      decimal.Decimal `json:"price"`
	Cost       decimal.Decimal `json:"cost"`
	CategoryID *int64          `json:"category_id"`
}

// ProductFilter parámetros de GET /api/products.
type ProductFilter struct {
	Search   string `query:"search"`   // nombre o SKU, sin distinguir mayúsculas
	Category string `query:"category"` // nombre de categoría; "all" o vacío = todas
	Status   string `query:"status"`   // OUT_OF_STOCK | CRITICAL | LOW | NORMAL
	Sort     string `query:"sort"`     // name | quantity | price
	Order    string `query:"order"`    // asc | desc
	PageRequest
}

// ProductResponse salida de un producto con su estado de stock derivado.
type ProductResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	SKU         string           `json:"sku"`
	CategoryID  *int64           `json:"category_id"`
	Category    string           `json:"category"`
	Quantity    int              `json:"quantity"`
	MinStock    int              `json:"min_stock"`
	Price       decimal.Decimal  `json:"price"`
	Cost        decimal.Decimal  `json:"cost"`
	StockValue  decimal.Decimal  `json:"stock_value"` // price × quantity
	Status      string           `json:"status"`
	StatusLabel string           `json:"status_label"`
	StockRatio  *decimal.Decimal `json:"stock_ratio"` // quantity / min_stock × 100; null si min_stock = 0
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// UnitCostRequest entrada de POST /api/products/unit-cost.
type UnitCostRequest struct {
	BatchQuantity int             `json:"batch_quantity"`
	TotalCost     decimal.Decimal `json:"total_cost"`
}

// UnitCostResponse costo unitario redondeado a centavos.
type UnitCostResponse struct {
	UnitCost decimal.Decimal `json:"unit_cost"`
}
