package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/lojinha-control-api/internal/domain/inventory"
)

// ReportRenderer genera el documento del reporte de inventario (PDF u otro formato).
type ReportRenderer interface {
	RenderInventory(ctx context.Context, report InventoryReport) ([]byte, error)
}

// InventoryReport datos listos para imprimir.
type InventoryReport struct {
	ID            string
	BusinessName  string
	GeneratedAt   time.Time
	TotalValue    decimal.Decimal
	InventoryCost decimal.Decimal
	ProductCount  int
	LowStockCount int
	Products      []ReportProductLine
	Categories    []inventory.CategoryValue
}

// ReportProductLine fila de la tabla de productos.
type ReportProductLine struct {
	SKU         string
	Name        string
	Category    string
	Quantity    int
	MinStock    int
	StatusLabel string
	Price       decimal.Decimal
	LineValue   decimal.Decimal
}
