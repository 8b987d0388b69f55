package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/lojinha-control-api/internal/application/dto"
	"github.com/jhoicas/lojinha-control-api/internal/domain"
	"github.com/jhoicas/lojinha-control-api/internal/domain/entity"
	"github.com/jhoicas/lojinha-control-api/internal/domain/repository"
)

// MovementUseCase casos de uso de movimientos de stock.
// La API de inventario aplica el movimiento sobre la cantidad del producto.
type MovementUseCase struct {
	movements repository.StockMovementRepository
	products  repository.ProductRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(movements repository.StockMovementRepository, products repository.ProductRepository) *MovementUseCase {
	return &MovementUseCase{movements: movements, products: products}
}

// List devuelve los movimientos del más reciente al más antiguo, filtrados por producto y tipo.
func (uc *MovementUseCase) List(ctx context.Context, f dto.MovementFilter) (*dto.MovementListResponse, error) {
	var typ entity.MovementType
	if f.Type != "" {
		typ = entity.MovementType(strings.ToLower(f.Type))
		if !typ.Valid() {
			return nil, fmt.Errorf("type %q inválido (entrada|saida): %w", f.Type, domain.ErrInvalidArgument)
		}
	}

	movements, err := uc.movements.List(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))
	filtered := make([]entity.StockMovement, 0, len(movements))
	for _, m := range movements {
		if typ != "" && m.Type != typ {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(m.ProductName), search) {
			continue
		}
		filtered = append(filtered, m)
	}

	f.DefaultPage()
	from, to := f.Window(len(filtered))
	items := make([]dto.MovementResponse, 0, to-from)
	for _, m := range filtered[from:to] {
		items = append(items, ToMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset, Total: len(filtered)},
	}, nil
}

// Register valida y registra un movimiento. El producto debe existir.
// El stock insuficiente en saídas lo rechaza la API (se propaga como error).
func (uc *MovementUseCase) Register(ctx context.Context, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	typ := entity.MovementType(strings.ToLower(strings.TrimSpace(in.Type)))
	switch {
	case in.ProductID <= 0:
		return nil, fmt.Errorf("product_id es obligatorio: %w", domain.ErrInvalidInput)
	case !typ.Valid():
		return nil, fmt.Errorf("type %q inválido (entrada|saida): %w", in.Type, domain.ErrInvalidInput)
	case in.Quantity <= 0:
		return nil, fmt.Errorf("quantity debe ser mayor que cero: %w", domain.ErrInvalidInput)
	}

	product, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}

	m, err := uc.movements.Create(ctx, repository.StockMovementWrite{
		ProductID:  in.ProductID,
		Type:       typ,
		Quantity:   in.Quantity,
		Reason:     strings.TrimSpace(in.Reason),
		HappenedAt: in.HappenedAt,
	})
	if err != nil {
		return nil, err
	}
	if m.ProductName == "" {
		m.ProductName = product.Name
	}
	if m.Reason == "" {
		m.Reason = strings.TrimSpace(in.Reason)
	}
	out := ToMovementResponse(*m)
	return &out, nil
}
