package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/lojinha-control-api/internal/domain/entity"
	"github.com/jhoicas/lojinha-control-api/pkg/money"
)

// UncategorizedName agrupa los productos sin categoría en los reportes.
const UncategorizedName = "Sem categoria"

// TotalInventoryValue suma price * quantity de todos los productos.
// Acumula en centavos enteros para no arrastrar errores de redondeo.
func TotalInventoryValue(products []entity.Product) decimal.Decimal {
	var cents int64
	for _, p := range products {
		cents += lineCents(p.Price, p.Quantity)
	}
	return money.FromCents(cents)
}

// InventoryCost suma cost * quantity de todos los productos (valor a costo).
func InventoryCost(products []entity.Product) decimal.Decimal {
	var cents int64
	for _, p := range products {
		cents += lineCents(p.Cost, p.Quantity)
	}
	return money.FromCents(cents)
}

// LowStockCount cuenta los productos cuyo nivel no es NORMAL.
func LowStockCount(products []entity.Product) int {
	n := 0
	for _, p := range products {
		if ClassifyProduct(p).NeedsRestock() {
			n++
		}
	}
	return n
}

// OutOfStockCount cuenta los productos sin stock.
func OutOfStockCount(products []entity.Product) int {
	n := 0
	for _, p := range products {
		if ClassifyProduct(p) == StatusOutOfStock {
			n++
		}
	}
	return n
}

// NetMovementDelta suma +quantity por cada entrada y -quantity por cada salida.
// No filtra por fecha: el llamador decide qué movimientos entran.
func NetMovementDelta(movements []entity.StockMovement) int {
	delta := 0
	for _, m := range movements {
		delta += m.SignedQuantity()
	}
	return delta
}

// MovementTotals devuelve las unidades totales de entradas y de salidas.
func MovementTotals(movements []entity.StockMovement) (entradas, saidas int) {
	for _, m := range movements {
		switch m.Type {
		case entity.MovementEntrada:
			entradas += m.Quantity
		case entity.MovementSaida:
			saidas += m.Quantity
		}
	}
	return entradas, saidas
}

// CategoryValue valor del inventario agrupado por categoría.
type CategoryValue struct {
	CategoryName string
	ProductCount int
	Units        int
	Value        decimal.Decimal
	Percentage   decimal.Decimal // % sobre el valor total, 2 decimales
}

// ValueByCategory agrupa el valor del inventario por nombre de categoría, ordenado
// por valor descendente (empate: nombre ascendente).
func ValueByCategory(products []entity.Product) []CategoryValue {
	type acc struct {
		count, units int
		cents        int64
	}
	groups := make(map[string]*acc)
	var totalCents int64
	for _, p := range products {
		name := p.CategoryName
		if name == "" {
			name = UncategorizedName
		}
		g, ok := groups[name]
		if !ok {
			g = &acc{}
			groups[name] = g
		}
		c := lineCents(p.Price, p.Quantity)
		g.count++
		g.units += p.Quantity
		g.cents += c
		totalCents += c
	}

	out := make([]CategoryValue, 0, len(groups))
	for name, g := range groups {
		pct := decimal.Zero
		if totalCents > 0 {
			pct = decimal.NewFromInt(g.cents).
				Mul(decimal.NewFromInt(100)).
				Div(decimal.NewFromInt(totalCents)).
				Round(2)
		}
		out = append(out, CategoryValue{
			CategoryName: name,
			ProductCount: g.count,
			Units:        g.units,
			Value:        money.FromCents(g.cents),
			Percentage:   pct,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Value.Equal(out[j].Value) {
			return out[i].Value.GreaterThan(out[j].Value)
		}
		return out[i].CategoryName < out[j].CategoryName
	})
	return out
}

// AverageMargin promedio de (price - cost) / price * 100 sobre los productos con precio > 0.
// ok es false si ningún producto tiene precio.
func AverageMargin(products []entity.Product) (margin decimal.Decimal, ok bool) {
	sum := decimal.Zero
	n := 0
	hundred := decimal.NewFromInt(100)
	for _, p := range products {
		if !p.Price.GreaterThan(decimal.Zero) {
			continue
		}
		sum = sum.Add(p.Price.Sub(p.Cost).Div(p.Price).Mul(hundred))
		n++
	}
	if n == 0 {
		return decimal.Zero, false
	}
	return sum.Div(decimal.NewFromInt(int64(n))).Round(2), true
}

func lineCents(unit decimal.Decimal, quantity int) int64 {
	return money.ToCents(unit.Mul(decimal.NewFromInt(int64(quantity))))
}
