// Package pdf genera el reporte de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio      │  Fecha + ID del reporte   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Valor total | Costo | Productos | Stock bajo       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Categoría | Cant./Mín | Estado |    │
//	│         Precio | Valor                                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VALOR POR CATEGORÍA: Categoría | Productos | Valor | %      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/lojinha-control-api/internal/application/analytics"
	"github.com/jhoicas/lojinha-control-api/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 200, Green: 40, Blue: 40}
	colorWarning = &props.Color{Red: 200, Green: 130, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ analytics.ReportRenderer = (*MarotoReportRenderer)(nil)

// MarotoReportRenderer implementa analytics.ReportRenderer usando Maroto v2.
type MarotoReportRenderer struct{}

// NewMarotoReportRenderer construye el generador.
func NewMarotoReportRenderer() *MarotoReportRenderer { return &MarotoReportRenderer{} }

// RenderInventory genera el PDF y devuelve sus bytes.
func (g *MarotoReportRenderer) RenderInventory(_ context.Context, report analytics.InventoryReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de estoque", true).
		WithAuthor(report.BusinessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("PRODUTOS"))
	m.AddRows(productHeaderRow())
	m.AddRows(productRows(report.Products)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitleRow("VALOR POR CATEGORIA"))
	m.AddRows(categoryHeaderRow())
	m.AddRows(categoryRows(report)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y fecha + ID del reporte (der).
func headerRow(r analytics.InventoryReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(r.BusinessName, "Lojinha"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Relatório de estoque", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Gerado em "+r.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("ID: "+r.ID, props.Text{
				Size: 6.5, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRow: cuatro KPIs en columnas.
func summaryRow(r analytics.InventoryReport) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6, Align: align.Center}),
		)
	}
	return row.New(16).Add(
		kpi("Valor total", money.FormatBRL(r.TotalValue)),
		kpi("Custo do estoque", money.FormatBRL(r.InventoryCost)),
		kpi("Produtos", fmt.Sprintf("%d", r.ProductCount)),
		kpi("Estoque baixo", fmt.Sprintf("%d", r.LowStockCount)),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1, Left: 1, Right: 1,
	}))
}

func productHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("SKU", 2, align.Left),
		headerCell("Produto", 3, align.Left),
		headerCell("Categoria", 2, align.Left),
		headerCell("Qtd/Mín", 1, align.Center),
		headerCell("Status", 1, align.Center),
		headerCell("Preço", 1, align.Right),
		headerCell("Valor", 2, align.Right),
	)
}

// productRows: una fila por producto. Estados que necesitan reposición van en color.
func productRows(lines []analytics.ReportProductLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		statusProps := props.Text{Size: 7.5, Align: align.Center, Top: 1}
		switch l.StatusLabel {
		case "Sem estoque", "Crítico":
			statusProps.Color = colorDanger
			statusProps.Style = fontstyle.Bold
		case "Baixo":
			statusProps.Color = colorWarning
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(l.SKU, props.Text{Size: 7.5, Top: 1, Left: 1})),
			col.New(3).Add(text.New(l.Name, props.Text{Size: 7.5, Top: 1, Left: 1})),
			col.New(2).Add(text.New(l.Category, props.Text{Size: 7.5, Top: 1, Left: 1, Color: colorGray})),
			col.New(1).Add(text.New(fmt.Sprintf("%d/%d", l.Quantity, l.MinStock), props.Text{Size: 7.5, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(l.StatusLabel, statusProps)),
			col.New(1).Add(text.New(money.FormatBRL(l.Price), props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(money.FormatBRL(l.LineValue), props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	if len(result) == 0 {
		result = append(result, row.New(8).Add(col.New(12).Add(
			text.New("Nenhum produto cadastrado.", props.Text{Size: 8, Color: colorGray, Top: 2, Align: align.Center}),
		)))
	}
	return result
}

func categoryHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("Categoria", 5, align.Left),
		headerCell("Produtos", 2, align.Center),
		headerCell("Valor", 3, align.Right),
		headerCell("%", 2, align.Right),
	)
}

func categoryRows(r analytics.InventoryReport) []core.Row {
	result := make([]core.Row, 0, len(r.Categories))
	for _, c := range r.Categories {
		result = append(result, row.New(6).Add(
			col.New(5).Add(text.New(c.CategoryName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", c.ProductCount), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(money.FormatBRL(c.Value), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(c.Percentage.StringFixed(2)+"%", props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
