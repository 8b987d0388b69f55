package repository

import (
	"context"
	"time"

	"github.com/jhoicas/lojinha-control-api/internal/domain/entity"
)

// StockMovementRepository define el puerto hacia los movimientos de stock de la API.
type StockMovementRepository interface {
	// List devuelve los movimientos del más reciente al más antiguo.
	List(ctx context.Context) ([]entity.StockMovement, error)
	Create(ctx context.Context, in StockMovementWrite) (*entity.StockMovement, error)
}

// StockMovementWrite datos para registrar un movimiento.
type StockMovementWrite struct {
	ProductID  int64
	Type       entity.MovementType
	Quantity   int
	Reason     string
	HappenedAt *time.Time
}
