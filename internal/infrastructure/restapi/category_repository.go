package restapi

import (
	"context"
	"encoding/json"

	"github.com/jhoicas/lojinha-control-api/internal/domain/entity"
	"github.com/jhoicas/lojinha-control-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepository)(nil)

// CategoryRepository implementa repository.CategoryRepository contra /categories.
type CategoryRepository struct {
	client *Client
}

// NewCategoryRepository construye el repositorio.
func NewCategoryRepository(client *Client) *CategoryRepository {
	return &CategoryRepository{client: client}
}

func (r *CategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	categories := make([]entity.Category, 0)
	err := r.client.listAll(ctx, "/categories", func(raw json.RawMessage) error {
		var c apiCategory
		if err := json.Unmarshal(raw, &c); err != nil {
			return err
		}
		categories = append(categories, c.toEntity())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) Create(ctx context.Context, name, color string) (*entity.Category, error) {
	var c apiCategory
	if err := r.client.sendJSON(ctx, "POST", "/categories", categoryPayload{Name: name, Color: color}, &c); err != nil {
		return nil, err
	}
	out := c.toEntity()
	return &out, nil
}
