// Package analytics contiene los casos de uso del dashboard, alertas de stock bajo
// y reportes. Todos trabajan sobre una instantánea leída de la API en cada request.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/lojinha-control-api/internal/application/dto"
	"github.com/jhoicas/lojinha-control-api/internal/application/usecase"
	"github.com/jhoicas/lojinha-control-api/internal/domain/entity"
	"github.com/jhoicas/lojinha-control-api/internal/domain/inventory"
	"github.com/jhoicas/lojinha-control-api/pkg/money"
)

const (
	dashboardRecentMovements = 5 // movimientos en el widget "recientes"
	dashboardLowStockAlerts  = 5 // alertas en el widget de stock bajo
)

// DashboardUseCase genera los KPIs del dashboard.
type DashboardUseCase struct {
	src Sources
	loc *time.Location
	now func() time.Time
}

// NewDashboardUseCase construye el caso de uso. loc define qué es "hoy" (nil = UTC).
func NewDashboardUseCase(src Sources, loc *time.Location) *DashboardUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardUseCase{src: src, loc: loc, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetSummary lee productos, categorías y movimientos en paralelo y calcula el resumen.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	snap, err := uc.src.fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	now := uc.now()

	today := make([]entity.StockMovement, 0)
	for _, m := range snap.movements {
		if sameDay(m.CreatedAt, now, uc.loc) {
			today = append(today, m)
		}
	}

	total := inventory.TotalInventoryValue(snap.products)
	out := &dto.DashboardSummaryDTO{
		TotalProducts:   len(snap.products),
		TotalValue:      total,
		TotalValueText:  money.FormatBRL(total),
		LowStockCount:   inventory.LowStockCount(snap.products),
		OutOfStockCount: inventory.OutOfStockCount(snap.products),
		CategoryCount:   len(snap.categories),
		MovementsToday:  len(today),
		NetDeltaToday:   inventory.NetMovementDelta(today),
		RecentMovements: make([]dto.MovementResponse, 0, dashboardRecentMovements),
		LowStockAlerts:  make([]dto.LowStockItemDTO, 0, dashboardLowStockAlerts),
		StatusBreakdown: make(map[string]int, len(inventory.Statuses)),
	}
	if margin, ok := inventory.AverageMargin(snap.products); ok {
		out.AverageMargin = &margin
	}

	for i, m := range snap.movements {
		if i == dashboardRecentMovements {
			break
		}
		out.RecentMovements = append(out.RecentMovements, usecase.ToMovementResponse(m))
	}

	for i, p := range restockQueue(snap.products) {
		if i == dashboardLowStockAlerts {
			break
		}
		out.LowStockAlerts = append(out.LowStockAlerts, toLowStockItem(p))
	}

	out.CategoryChart = categoryValues(snap)

	for st, n := range inventory.StatusCounts(snap.products) {
		out.StatusBreakdown[string(st)] = n
	}
	return out, nil
}

func categoryValues(snap *snapshot) []dto.CategoryValueDTO {
	colors := snap.colorByCategory()
	groups := inventory.ValueByCategory(snap.products)
	out := make([]dto.CategoryValueDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.CategoryValueDTO{
			Category:     g.CategoryName,
			Color:        colors[g.CategoryName],
			ProductCount: g.ProductCount,
			Units:        g.Units,
			Value:        g.Value,
			Percentage:   g.Percentage,
		})
	}
	return out
}

func toLowStockItem(p entity.Product) dto.LowStockItemDTO {
	pr := usecase.ToProductResponse(p)
	return dto.LowStockItemDTO{
		ProductID:   pr.ID,
		Name:        pr.Name,
		SKU:         pr.SKU,
		Category:    pr.Category,
		Quantity:    pr.Quantity,
		MinStock:    pr.MinStock,
		Status:      pr.Status,
		StatusLabel: pr.StatusLabel,
		StockRatio:  pr.StockRatio,
	}
}
