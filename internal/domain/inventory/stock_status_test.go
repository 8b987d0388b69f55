package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/lojinha-control-api/internal/domain/entity"
	"github.com/jhoicas/lojinha-control-api/internal/domain/inventory"
)

func TestClassify_SinStockSiempreOutOfStock(t *testing.T) {
	for _, min := range []int{0, 1, 2, 5, 100} {
		assert.Equal(t, inventory.StatusOutOfStock, inventory.Classify(0, min), "minStock=%d", min)
	}
}

func TestClassify_MinStockCeroEsNormal(t *testing.T) {
	for _, q := range []int{1, 2, 10, 1000} {
		assert.Equal(t, inventory.StatusNormal, inventory.Classify(q, 0), "quantity=%d", q)
	}
}

func TestClassify_Umbrales(t *testing.T) {
	for _, min := range []int{1, 2, 3, 5, 10, 11, 100} {
		assert.Equal(t, inventory.StatusLow, inventory.Classify(min, min), "q=min=%d", min)
		assert.Equal(t, inventory.StatusNormal, inventory.Classify(min+1, min), "q=min+1, min=%d", min)
		if min/2 > 0 {
			assert.Equal(t, inventory.StatusCritical, inventory.Classify(min/2, min), "q=min/2, min=%d", min)
		}
	}
}

func TestClassify_Tabla(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		minStock int
		want     inventory.StockStatus
	}{
		{"negativo se trata como sin stock", -3, 5, inventory.StatusOutOfStock},
		{"mitad exacta es crítico", 5, 10, inventory.StatusCritical},
		{"apenas sobre la mitad es bajo", 6, 10, inventory.StatusLow},
		{"mínimo impar, piso de la mitad", 2, 5, inventory.StatusCritical},
		{"mínimo impar, techo de la mitad", 3, 5, inventory.StatusLow},
		{"mínimo 1 con una unidad es bajo", 1, 1, inventory.StatusLow},
		{"sobre el mínimo", 10, 5, inventory.StatusNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inventory.Classify(tt.quantity, tt.minStock))
		})
	}
}

func TestClassify_Idempotente(t *testing.T) {
	assert.Equal(t, inventory.Classify(4, 10), inventory.Classify(4, 10))
}

func TestStockRatio(t *testing.T) {
	ratio, ok := inventory.StockRatio(2, 5)
	assert.True(t, ok)
	assert.Equal(t, "40.00", ratio.StringFixed(2))

	ratio, ok = inventory.StockRatio(1, 3)
	assert.True(t, ok)
	assert.Equal(t, "33.33", ratio.StringFixed(2))

	_, ok = inventory.StockRatio(7, 0)
	assert.False(t, ok, "sin stock mínimo no hay porcentaje")
}

func TestStockStatus_LabelYSeveridad(t *testing.T) {
	assert.Equal(t, "Sem estoque", inventory.StatusOutOfStock.Label())
	assert.Equal(t, "Crítico", inventory.StatusCritical.Label())
	assert.Equal(t, "Baixo", inventory.StatusLow.Label())
	assert.Equal(t, "Normal", inventory.StatusNormal.Label())

	assert.Less(t, inventory.StatusOutOfStock.Severity(), inventory.StatusCritical.Severity())
	assert.Less(t, inventory.StatusCritical.Severity(), inventory.StatusLow.Severity())
	assert.False(t, inventory.StatusNormal.NeedsRestock())
	assert.True(t, inventory.StatusLow.NeedsRestock())
}

func TestParseStockStatus(t *testing.T) {
	st, ok := inventory.ParseStockStatus("CRITICAL")
	assert.True(t, ok)
	assert.Equal(t, inventory.StatusCritical, st)

	_, ok = inventory.ParseStockStatus("critical")
	assert.False(t, ok)
}

// Escenario de punta a punta: sin stock, crítico y normal con el mismo mínimo.
func TestClassify_EscenarioDashboard(t *testing.T) {
	products := []entity.Product{
		{ID: 1, Quantity: 0, MinStock: 5},
		{ID: 2, Quantity: 2, MinStock: 5},
		{ID: 3, Quantity: 10, MinStock: 5},
	}

	got := make([]inventory.StockStatus, 0, len(products))
	for _, p := range products {
		got = append(got, inventory.ClassifyProduct(p))
	}

	assert.Equal(t, []inventory.StockStatus{
		inventory.StatusOutOfStock, inventory.StatusCritical, inventory.StatusNormal,
	}, got)
	assert.Equal(t, 2, inventory.LowStockCount(products))

	counts := inventory.StatusCounts(products)
	assert.Equal(t, 1, counts[inventory.StatusOutOfStock])
	assert.Equal(t, 1, counts[inventory.StatusCritical])
	assert.Equal(t, 0, counts[inventory.StatusLow])
	assert.Equal(t, 1, counts[inventory.StatusNormal])
}
