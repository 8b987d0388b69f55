package restapi

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/jhoicas/lojinha-control-api/internal/domain/entity"
	"github.com/jhoicas/lojinha-control-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepository)(nil)

// StockMovementRepository implementa repository.StockMovementRepository contra /stock-movements.
type StockMovementRepository struct {
	client *Client
}

// NewStockMovementRepository construye el repositorio.
func NewStockMovementRepository(client *Client) *StockMovementRepository {
	return &StockMovementRepository{client: client}
}

// List devuelve los movimientos del más reciente al más antiguo, sin importar cómo los ordene la API.
func (r *StockMovementRepository) List(ctx context.Context) ([]entity.StockMovement, error) {
	movements := make([]entity.StockMovement, 0)
	err := r.client.listAll(ctx, "/stock-movements", func(raw json.RawMessage) error {
		var m apiMovement
		if err := json.Unmarshal(raw, &m); err != nil {
			return err
		}
		movements = append(movements, m.toEntity(r.client.loc))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(movements, func(i, j int) bool {
		if movements[i].CreatedAt.Equal(movements[j].CreatedAt) {
			return movements[i].ID > movements[j].ID
		}
		return movements[i].CreatedAt.After(movements[j].CreatedAt)
	})
	return movements, nil
}

// Create registra el movimiento; la API ajusta el stock del producto.
func (r *StockMovementRepository) Create(ctx context.Context, in repository.StockMovementWrite) (*entity.StockMovement, error) {
	var m apiMovement
	if err := r.client.sendJSON(ctx, "POST", "/stock-movements", newMovementPayload(in), &m); err != nil {
		return nil, err
	}
	out := m.toEntity(r.client.loc)
	if out.ProductID == 0 {
		out.ProductID = in.ProductID
	}
	if !out.Type.Valid() {
		out.Type = in.Type
	}
	if out.Quantity == 0 {
		out.Quantity = in.Quantity
	}
	return &out, nil
}
