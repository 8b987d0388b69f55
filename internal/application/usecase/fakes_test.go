package usecase_test

import (
	"context"
	"fmt"

	"github.com/jhoicas/lojinha-control-api/internal/domain"
	"github.com/jhoicas/lojinha-control-api/internal/domain/entity"
	"github.com/jhoicas/lojinha-control-api/internal/domain/repository"
)

type fakeProductRepo struct {
	products []entity.Product
	created  []repository.ProductWrite
	updated  map[int64]repository.ProductWrite
	deleted  []int64
}

func (f *fakeProductRepo) List(context.Context) ([]entity.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
}

func (f *fakeProductRepo) Create(_ context.Context, in repository.ProductWrite) (*entity.Product, error) {
	f.created = append(f.created, in)
	return &entity.Product{
		ID: int64(100 + len(f.created)), Name: in.Name, SKU: in.SKU, Quantity: in.Quantity,
		MinStock: in.MinStock, Price: in.Price, Cost: in.Cost, CategoryID: in.CategoryID,
	}, nil
}

func (f *fakeProductRepo) Update(_ context.Context, id int64, in repository.ProductWrite) (*entity.Product, error) {
	if f.updated == nil {
		f.updated = map[int64]repository.ProductWrite{}
	}
	f.updated[id] = in
	return &entity.Product{ID: id, Name: in.Name, SKU: in.SKU, Quantity: in.Quantity, MinStock: in.MinStock, Price: in.Price, Cost: in.Cost}, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCategoryRepo struct {
	categories []entity.Category
	lastColor  string
}

func (f *fakeCategoryRepo) List(context.Context) ([]entity.Category, error) {
	return f.categories, nil
}

func (f *fakeCategoryRepo) Create(_ context.Context, name, color string) (*entity.Category, error) {
	f.lastColor = color
	return &entity.Category{ID: 9, Name: name, Color: color}, nil
}

type fakeMovementRepo struct {
	movements []entity.StockMovement
	created   []repository.StockMovementWrite
	createErr error
}

func (f *fakeMovementRepo) List(context.Context) ([]entity.StockMovement, error) {
	return f.movements, nil
}

func (f *fakeMovementRepo) Create(_ context.Context, in repository.StockMovementWrite) (*entity.StockMovement, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, in)
	return &entity.StockMovement{ID: 50, ProductID: in.ProductID, Type: in.Type, Quantity: in.Quantity}, nil
}
