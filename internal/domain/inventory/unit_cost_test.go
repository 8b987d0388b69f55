package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lojinha-control-api/internal/domain"
	"github.com/jhoicas/lojinha-control-api/internal/domain/inventory"
)

func TestDeriveUnitCost(t *testing.T) {
	tests := []struct {
		qty   int
		total string
		want  string
	}{
		{4, "100", "25.00"},
		{3, "10", "3.33"},
		{3, "20", "6.67"},
		{8, "1", "0.13"}, // 0.125 → half-up
		{1, "0", "0.00"},
	}
	for _, tt := range tests {
		got, err := inventory.DeriveUnitCost(tt.qty, decimal.RequireFromString(tt.total))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.StringFixed(2), "DeriveUnitCost(%d, %s)", tt.qty, tt.total)
	}
}

func TestDeriveUnitCost_CantidadInvalida(t *testing.T) {
	for _, q := range []int{0, -1} {
		_, err := inventory.DeriveUnitCost(q, decimal.NewFromInt(100))
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	}
}

func TestDeriveUnitCost_CostoNegativo(t *testing.T) {
	_, err := inventory.DeriveUnitCost(2, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
