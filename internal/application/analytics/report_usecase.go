package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/lojinha-control-api/internal/application/dto"
	"github.com/jhoicas/lojinha-control-api/internal/domain"
	"github.com/jhoicas/lojinha-control-api/internal/domain/entity"
	"github.com/jhoicas/lojinha-control-api/internal/domain/inventory"
	"github.com/jhoicas/lojinha-control-api/pkg/money"
)

const (
	defaultReportMonths = 6
	maxReportMonths     = 24
)

// ReportUseCase genera el resumen de reportes y el PDF del inventario.
type ReportUseCase struct {
	src          Sources
	renderer     ReportRenderer
	businessName string
	loc          *time.Location
	now          func() time.Time
}

// NewReportUseCase construye el caso de uso. loc define los límites de cada mes (nil = UTC).
func NewReportUseCase(src Sources, renderer ReportRenderer, businessName string, loc *time.Location) *ReportUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportUseCase{src: src, renderer: renderer, businessName: businessName, loc: loc, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *ReportUseCase) WithClock(now func() time.Time) *ReportUseCase {
	uc.now = now
	return uc
}

// Summary valor total, costo, margen medio, valor por categoría y movimientos de los últimos meses.
func (uc *ReportUseCase) Summary(ctx context.Context, req dto.ReportRequest) (*dto.ReportSummaryDTO, error) {
	months := req.Months
	if months == 0 {
		months = defaultReportMonths
	}
	if months < 0 || months > maxReportMonths {
		return nil, fmt.Errorf("months debe estar entre 1 y %d: %w", maxReportMonths, domain.ErrInvalidArgument)
	}

	snap, err := uc.src.fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: %w", err)
	}

	total := inventory.TotalInventoryValue(snap.products)
	cost := inventory.InventoryCost(snap.products)
	out := &dto.ReportSummaryDTO{
		TotalValue:      total,
		InventoryCost:   cost,
		PotentialProfit: total.Sub(cost),
		TotalProducts:   len(snap.products),
		ByCategory:      categoryValues(snap),
		Monthly:         monthlyMovements(snap.movements, uc.now(), uc.loc, months),
	}
	if margin, ok := inventory.AverageMargin(snap.products); ok {
		out.AverageMargin = &margin
	}
	for _, p := range snap.products {
		if p.Quantity > 0 {
			out.ActiveProducts++
		}
	}
	return out, nil
}

// InventoryPDF genera el PDF con todos los productos (ordenados por nombre) y el valor por categoría.
func (uc *ReportUseCase) InventoryPDF(ctx context.Context) ([]byte, error) {
	snap, err := uc.src.fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte PDF: %w", err)
	}

	products := make([]entity.Product, len(snap.products))
	copy(products, snap.products)
	sort.SliceStable(products, func(i, j int) bool {
		return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
	})

	lines := make([]ReportProductLine, 0, len(products))
	for _, p := range products {
		category := p.CategoryName
		if category == "" {
			category = inventory.UncategorizedName
		}
		lines = append(lines, ReportProductLine{
			SKU:         p.SKU,
			Name:        p.Name,
			Category:    category,
			Quantity:    p.Quantity,
			MinStock:    p.MinStock,
			StatusLabel: inventory.ClassifyProduct(p).Label(),
			Price:       p.Price,
			LineValue:   money.FromCents(money.ToCents(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))),
		})
	}

	report := InventoryReport{
		ID:            uuid.NewString(),
		BusinessName:  uc.businessName,
		GeneratedAt:   uc.now().In(uc.loc),
		TotalValue:    inventory.TotalInventoryValue(snap.products),
		InventoryCost: inventory.InventoryCost(snap.products),
		ProductCount:  len(snap.products),
		LowStockCount: inventory.LowStockCount(snap.products),
		Products:      lines,
		Categories:    inventory.ValueByCategory(snap.products),
	}
	doc, err := uc.renderer.RenderInventory(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("reporte PDF: generar documento: %w", err)
	}
	return doc, nil
}

// monthlyMovements totales de entradas y saídas de los últimos n meses (incluye el actual),
// del más antiguo al más reciente. Los meses sin movimientos aparecen en cero.
func monthlyMovements(movements []entity.StockMovement, now time.Time, loc *time.Location, n int) []dto.MonthlyMovementDTO {
	now = now.In(loc)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, -(n - 1), 0)

	out := make([]dto.MonthlyMovementDTO, n)
	index := make(map[string]int, n)
	for i := 0; i < n; i++ {
		m := first.AddDate(0, i, 0)
		key := m.Format("2006-01")
		index[key] = i
		out[i] = dto.MonthlyMovementDTO{Month: key, Label: monthLabel(m)}
	}

	for _, mv := range movements {
		i, ok := index[mv.CreatedAt.In(loc).Format("2006-01")]
		if !ok {
			continue
		}
		switch mv.Type {
		case entity.MovementEntrada:
			out[i].Entradas += mv.Quantity
		case entity.MovementSaida:
			out[i].Saidas += mv.Quantity
		}
	}
	for i := range out {
		out[i].Net = out[i].Entradas - out[i].Saidas
	}
	return out
}

// monthLabel devuelve una etiqueta corta del mes, ej: "jan/2024".
func monthLabel(t time.Time) string {
	months := [...]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}
	return fmt.Sprintf("%s/%d", months[t.Month()-1], t.Year())
}
