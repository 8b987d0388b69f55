// Package inventory contiene las reglas puras de clasificación de stock y valorización
// del inventario (servicios de dominio). No hace I/O ni guarda estado: todas las
// funciones son seguras para uso concurrente sobre la misma instantánea.
package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/lojinha-control-api/internal/domain/entity"
)

// StockStatus nivel de stock derivado de (cantidad, stock mínimo). Nunca se persiste.
type StockStatus string

// Niveles de stock, de más grave a menos grave.
const (
	StatusOutOfStock StockStatus = "OUT_OF_STOCK"
	StatusCritical   StockStatus = "CRITICAL"
	StatusLow        StockStatus = "LOW"
	StatusNormal     StockStatus = "NORMAL"
)

// Statuses lista los niveles en orden de gravedad.
var Statuses = []StockStatus{StatusOutOfStock, StatusCritical, StatusLow, StatusNormal}

// Classify deriva el nivel de stock. Reglas en orden de precedencia:
//  1. quantity <= 0                        → OUT_OF_STOCK
//  2. minStock > 0 y quantity <= minStock/2 → CRITICAL
//  3. minStock > 0 y quantity <= minStock   → LOW
//  4. en otro caso                          → NORMAL
//
// Con minStock == 0 las reglas 2 y 3 no aplican.
func Classify(quantity, minStock int) StockStatus {
	if quantity <= 0 {
		return StatusOutOfStock
	}
	if minStock > 0 {
		// quantity <= minStock*0.5 evaluado en enteros
		if 2*quantity <= minStock {
			return StatusCritical
		}
		if quantity <= minStock {
			return StatusLow
		}
	}
	return StatusNormal
}

// ClassifyProduct atajo de Classify sobre un producto.
func ClassifyProduct(p entity.Product) StockStatus {
	return Classify(p.Quantity, p.MinStock)
}

// NeedsRestock es true para todo nivel distinto de NORMAL.
func (s StockStatus) NeedsRestock() bool {
	return s != StatusNormal
}

// Severity orden de gravedad (0 = más grave). Niveles desconocidos van al final.
func (s StockStatus) Severity() int {
	for i, st := range Statuses {
		if st == s {
			return i
		}
	}
	return len(Statuses)
}

// Label etiqueta mostrada en el dashboard.
func (s StockStatus) Label() string {
	switch s {
	case StatusOutOfStock:
		return "Sem estoque"
	case StatusCritical:
		return "Crítico"
	case StatusLow:
		return "Baixo"
	default:
		return "Normal"
	}
}

// ParseStockStatus interpreta un nivel recibido como texto (filtros de listados).
func ParseStockStatus(s string) (StockStatus, bool) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// StockRatio devuelve quantity/minStock*100 redondeado a 2 decimales.
// ok es false cuando minStock == 0: no hay barra de progreso que mostrar.
func StockRatio(quantity, minStock int) (ratio decimal.Decimal, ok bool) {
	if minStock <= 0 {
		return decimal.Zero, false
	}
	return decimal.NewFromInt(int64(quantity)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(minStock))).
		Round(2), true
}

// StatusCounts cuenta productos por nivel. Todos los niveles aparecen en el mapa.
func StatusCounts(products []entity.Product) map[StockStatus]int {
	counts := make(map[StockStatus]int, len(Statuses))
	for _, st := range Statuses {
		counts[st] = 0
	}
	for _, p := range products {
		counts[ClassifyProduct(p)]++
	}
	return counts
}
