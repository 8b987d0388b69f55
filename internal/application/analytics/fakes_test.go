package analytics_test

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/lojinha-control-api/internal/application/analytics"
	"github.com/jhoicas/lojinha-control-api/internal/domain/entity"
	"github.com/jhoicas/lojinha-control-api/internal/domain/repository"
)

var errUpstream = errors.New("upstream caído")

type productsStub struct {
	items []entity.Product
	err   error
}

func (s productsStub) List(ctx context.Context) ([]entity.Product, error) {
	return s.items, s.err
}
func (s productsStub) GetByID(context.Context, int64) (*entity.Product, error) { return nil, nil }
func (s productsStub) Create(context.Context, repository.ProductWrite) (*entity.Product, error) {
	return nil, nil
}
func (s productsStub) Update(context.Context, int64, repository.ProductWrite) (*entity.Product, error) {
	return nil, nil
}
func (s productsStub) Delete(context.Context, int64) error { return nil }

type categoriesStub struct {
	items []entity.Category
}

func (s categoriesStub) List(context.Context) ([]entity.Category, error) { return s.items, nil }
func (s categoriesStub) Create(context.Context, string, string) (*entity.Category, error) {
	return nil, nil
}

// movementsStub si block es true espera a que se cancele el contexto.
type movementsStub struct {
	items []entity.StockMovement
	block bool
}

func (s movementsStub) List(ctx context.Context) ([]entity.StockMovement, error) {
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return s.items, nil
}
func (s movementsStub) Create(context.Context, repository.StockMovementWrite) (*entity.StockMovement, error) {
	return nil, nil
}

type rendererStub struct {
	got analytics.InventoryReport
}

func (r *rendererStub) RenderInventory(_ context.Context, report analytics.InventoryReport) ([]byte, error) {
	r.got = report
	return []byte("%PDF-stub"), nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr(v int64) *int64 { return &v }

func sampleProducts() []entity.Product {
	return []entity.Product{
		{ID: 1, Name: "Camiseta", SKU: "CAM-001", CategoryID: ptr(1), CategoryName: "Roupas", Quantity: 0, MinStock: 10, Price: dec("50"), Cost: dec("25")},
		{ID: 2, Name: "Boné", SKU: "BON-001", CategoryID: ptr(1), CategoryName: "Roupas", Quantity: 3, MinStock: 10, Price: dec("30"), Cost: dec("15")},
		{ID: 3, Name: "Caneca", SKU: "CAN-001", CategoryID: ptr(2), CategoryName: "Cozinha", Quantity: 20, MinStock: 10, Price: dec("25"), Cost: dec("10")},
		{ID: 4, Name: "Adesivo", SKU: "ADE-001", Quantity: 8, MinStock: 10, Price: dec("2.50"), Cost: dec("1")},
	}
}

func sampleCategories() []entity.Category {
	return []entity.Category{
		{ID: 1, Name: "Roupas", Color: "hsl(217, 91%, 60%)"},
		{ID: 2, Name: "Cozinha", Color: "hsl(38, 92%, 50%)"},
	}
}

// now de referencia: 2024-03-15 10:00 en São Paulo (13:00 UTC).
var refNow = time.Date(2024, 3, 15, 13, 0, 0, 0, time.UTC)

func saoPaulo() *time.Location {
	return time.FixedZone("BRT", -3*60*60)
}
