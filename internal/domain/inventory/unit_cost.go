package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/lojinha-control-api/internal/domain"
)

// DeriveUnitCost calcula el costo unitario a partir del costo total de un lote:
// totalBatchCost / batchQuantity, redondeado half-up a 2 decimales.
// Devuelve domain.ErrInvalidArgument si batchQuantity <= 0 o el costo es negativo.
func DeriveUnitCost(batchQuantity int, totalBatchCost decimal.Decimal) (decimal.Decimal, error) {
	if batchQuantity <= 0 {
		return decimal.Zero, fmt.Errorf("cantidad del lote %d: %w", batchQuantity, domain.ErrInvalidArgument)
	}
	if totalBatchCost.IsNegative() {
		return decimal.Zero, fmt.Errorf("costo del lote %s: %w", totalBatchCost, domain.ErrInvalidArgument)
	}
	return totalBatchCost.Div(decimal.NewFromInt(int64(batchQuantity))).Round(2), nil
}
