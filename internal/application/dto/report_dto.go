package dto

import "github.com/shopspring/decimal"

// CategoryValueDTO valor de inventario de una categoría.
type CategoryValueDTO struct {
	Category     string          `json:"category"`
	Color        string          `json:"color,omitempty"`
	ProductCount int             `json:"product_count"`
	Units        int             `json:"units"`
	Value        decimal.Decimal `json:"value"`
	Percentage   decimal.Decimal `json:"percentage"` // participación % en el valor total
}

// MonthlyMovementDTO entradas y saídas de un mes.
type MonthlyMovementDTO struct {
	Month    string `json:"month"` // YYYY-MM
	Label    string `json:"label"` // ej. "jan/2024"
	Entradas int    `json:"entradas"`
	Saidas   int    `json:"saidas"`
	Net      int    `json:"net"`
}

// ReportRequest parámetros de GET /api/reports/summary.
type ReportRequest struct {
	Months int `query:"months"` // default 6, máx 24
}

// ReportSummaryDTO respuesta de GET /api/reports/summary.
type ReportSummaryDTO struct {
	TotalValue      decimal.Decimal      `json:"total_value"`
	InventoryCost   decimal.Decimal      `json:"inventory_cost"` // Σ cost × quantity
	PotentialProfit decimal.Decimal      `json:"potential_profit"`
	AverageMargin   *decimal.Decimal     `json:"average_margin"`
	ActiveProducts  int                  `json:"active_products"` // quantity > 0
	TotalProducts   int                  `json:"total_products"`
	ByCategory      []CategoryValueDTO   `json:"by_category"`
	Monthly         []MonthlyMovementDTO `json:"monthly"`
}
