package repository

import (
	"context"

	"github.com/jhoicas/lojinha-control-api/internal/domain/entity"
)

// CategoryRepository define el puerto hacia las categorías de la API de inventario.
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	Create(ctx context.Context, name, color string) (*entity.Category, error)
}
