package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/lojinha-control-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del dashboard.
type DashboardHandler struct {
	uc       *appanalytics.DashboardUseCase
	lowStock *appanalytics.LowStockUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, lowStock *appanalytics.LowStockUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, lowStock: lowStock}
}

// GetSummary devuelve los KPIs del inventario.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (total_products, total_value, low_stock_count,
// movements_today, recent_movements[5], low_stock_alerts[5], category_chart).
// "Hoy" se calcula en la zona horaria configurada (APP_TIMEZONE).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

// GetLowStock devuelve los productos que necesitan reposición.
// GET /api/dashboard/low-stock
func (h *DashboardHandler) GetLowStock(c *fiber.Ctx) error {
	out, err := h.lowStock.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
