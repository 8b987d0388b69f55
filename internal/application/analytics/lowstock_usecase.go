package analytics

import (
	"context"

	"github.com/jhoicas/lojinha-control-api/internal/application/dto"
	"github.com/jhoicas/lojinha-control-api/internal/domain/inventory"
	"github.com/jhoicas/lojinha-control-api/internal/domain/repository"
)

// LowStockUseCase lista los productos que necesitan reposición.
type LowStockUseCase struct {
	products repository.ProductRepository
}

// NewLowStockUseCase construye el caso de uso.
func NewLowStockUseCase(products repository.ProductRepository) *LowStockUseCase {
	return &LowStockUseCase{products: products}
}

// List devuelve los productos en OUT_OF_STOCK, CRITICAL o LOW (menor ratio primero).
// critical cuenta OUT_OF_STOCK + CRITICAL; warning cuenta LOW.
func (uc *LowStockUseCase) List(ctx context.Context) (*dto.LowStockResponseDTO, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	queue := restockQueue(products)
	out := &dto.LowStockResponseDTO{
		Items: make([]dto.LowStockItemDTO, 0, len(queue)),
		Total: len(queue),
	}
	for _, p := range queue {
		if inventory.ClassifyProduct(p) == inventory.StatusLow {
			out.Warning++
		} else {
			out.Critical++
		}
		out.Items = append(out.Items, toLowStockItem(p))
	}
	return out, nil
}
