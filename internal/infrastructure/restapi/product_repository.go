package restapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/lojinha-control-api/internal/domain/entity"
	"github.com/jhoicas/lojinha-control-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository implementa repository.ProductRepository contra /products.
type ProductRepository struct {
	client *Client
}

// NewProductRepository construye el repositorio.
func NewProductRepository(client *Client) *ProductRepository {
	return &ProductRepository{client: client}
}

// List devuelve todos los productos.
func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	products := make([]entity.Product, 0)
	err := r.client.listAll(ctx, "/products", func(raw json.RawMessage) error {
		var p apiProduct
		if err := json.Unmarshal(raw, &p); err != nil {
			return err
		}
		products = append(products, p.toEntity(r.client.loc))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID devuelve el producto o domain.ErrNotFound.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var p apiProduct
	if err := r.client.getJSON(ctx, productPath(id), &p); err != nil {
		return nil, err
	}
	out := p.toEntity(r.client.loc)
	return &out, nil
}

// Create da de alta el producto en la API.
func (r *ProductRepository) Create(ctx context.Context, in repository.ProductWrite) (*entity.Product, error) {
	var p apiProduct
	if err := r.client.sendJSON(ctx, "POST", "/products", newProductPayload(in), &p); err != nil {
		return nil, err
	}
	out := p.toEntity(r.client.loc)
	return &out, nil
}

// Update reemplaza los datos editables del producto.
func (r *ProductRepository) Update(ctx context.Context, id int64, in repository.ProductWrite) (*entity.Product, error) {
	var p apiProduct
	if err := r.client.sendJSON(ctx, "PUT", productPath(id), newProductPayload(in), &p); err != nil {
		return nil, err
	}
	if p.ID == 0 {
		// La API puede responder sin cuerpo; se vuelve a leer el recurso.
		return r.GetByID(ctx, id)
	}
	out := p.toEntity(r.client.loc)
	return &out, nil
}

// Delete elimina el producto.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	return r.client.delete(ctx, productPath(id))
}

func productPath(id int64) string {
	return fmt.Sprintf("/products/%d", id)
}
