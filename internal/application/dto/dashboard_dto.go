package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalProducts   int             `json:"total_products"`
	TotalValue      decimal.Decimal `json:"total_value"`      // Σ price × quantity
	TotalValueText  string          `json:"total_value_text"` // "R$ 1.234,50"
	LowStockCount   int             `json:"low_stock_count"`  // OUT_OF_STOCK + CRITICAL + LOW
	OutOfStockCount int             `json:"out_of_stock_count"`
	CategoryCount   int             `json:"category_count"`

	// Movimientos de hoy en la zona horaria configurada
	MovementsToday int `json:"movements_today"`
	NetDeltaToday  int `json:"net_delta_today"` // Σ entradas - Σ saídas

	// AverageMargin null si ningún producto tiene precio > 0
	AverageMargin *decimal.Decimal `json:"average_margin"`

	RecentMovements []MovementResponse `json:"recent_movements"` // 5 más recientes
	LowStockAlerts  []LowStockItemDTO  `json:"low_stock_alerts"` // hasta 5, menor ratio primero
	CategoryChart   []CategoryValueDTO `json:"category_chart"`
	StatusBreakdown map[string]int     `json:"status_breakdown"`
}

// LowStockItemDTO producto que necesita reposición.
type LowStockItemDTO struct {
	ProductID   int64            `json:"product_id"`
	Name        string           `json:"name"`
	SKU         string           `json:"sku"`
	Category    string           `json:"category"`
	Quantity    int              `json:"quantity"`
	MinStock    int              `json:"min_stock"`
	Status      string           `json:"status"`
	StatusLabel string           `json:"status_label"`
	StockRatio  *decimal.Decimal `json:"stock_ratio"`
}

// LowStockResponseDTO respuesta de GET /api/dashboard/low-stock.
type LowStockResponseDTO struct {
	Items    []LowStockItemDTO `json:"items"`
	Critical int               `json:"critical"` // OUT_OF_STOCK + CRITICAL
	Warning  int               `json:"warning"`  // LOW
	Total    int               `json:"total"`
}
