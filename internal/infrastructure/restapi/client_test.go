package restapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lojinha-control-api/internal/application/ports"
	"github.com/jhoicas/lojinha-control-api/internal/domain"
	"github.com/jhoicas/lojinha-control-api/internal/domain/entity"
	"github.com/jhoicas/lojinha-control-api/internal/domain/repository"
	"github.com/jhoicas/lojinha-control-api/internal/infrastructure/restapi"
)

func newServer(t *testing.T, h http.HandlerFunc) *restapi.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return restapi.NewClient(srv.URL, 5*time.Second, 10)
}

func TestProductRepository_List(t *testing.T) {
	var gotAuth, gotReqID string
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		assert.Equal(t, "/products", r.URL.Path)
		_, _ = io.WriteString(w, `[
			{"id": 1, "name": "Camiseta", "sku": "CAM-001", "quantity": 10, "min_stock": 5,
			 "price": 49.9, "cost": "20.00", "category": {"id": 3, "name": "Roupas"},
			 "created_at": "2024-01-15T10:30:00.000000Z", "updated_at": "2024-01-16 08:00:00"},
			{"id": 2, "name": "Boné", "sku": "BON-001", "quantity": 0, "min_stock": 2,
			 "price": 30, "cost": 10, "category": null}
		]`)
	})

	ctx := ports.WithAccessToken(context.Background(), "up-123")
	products, err := restapi.NewProductRepository(client).List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "Bearer up-123", gotAuth)
	assert.NotEmpty(t, gotReqID)

	p := products[0]
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, 5, p.MinStock)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("49.9")))
	assert.True(t, p.Cost.Equal(decimal.NewFromInt(20)))
	require.NotNil(t, p.CategoryID)
	assert.Equal(t, int64(3), *p.CategoryID)
	assert.Equal(t, "Roupas", p.CategoryName)
	assert.Equal(t, 2024, p.CreatedAt.Year())
	assert.Equal(t, 16, p.UpdatedAt.Day())

	assert.False(t, products[1].HasCategory())
}

func TestClient_SinTokenNoEnviaAuthorization(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `[]`)
	})

	cats, err := restapi.NewCategoryRepository(client).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestClient_MapeoDeStatus(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, domain.ErrUnauthorized},
		{http.StatusForbidden, domain.ErrUnauthorized},
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusConflict, domain.ErrConflict},
		{http.StatusUnprocessableEntity, domain.ErrInvalidInput},
		{http.StatusBadRequest, domain.ErrInvalidInput},
		{http.StatusInternalServerError, domain.ErrUpstream},
		{http.StatusBadGateway, domain.ErrUpstream},
	}
	for _, tc := range cases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, `{"message": "falló"}`)
			})
			_, err := restapi.NewProductRepository(client).GetByID(context.Background(), 9)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), "/products/9")
		})
	}
}

func TestClient_MensajeDeValidacion(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"message": "The given data was invalid.", "errors": {"sku": ["The sku has already been taken."]}}`)
	})

	_, err := restapi.NewProductRepository(client).Create(context.Background(), repository.ProductWrite{Name: "X", SKU: "DUP"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "sku: The sku has already been taken.")
}

func TestStockMovementRepository_ListPaginado(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "":
			_, _ = io.WriteString(w, `{"current_page": 1, "last_page": 2, "data": [
				{"id": 1, "product_id": 1, "product_name": "Camiseta", "type": "entrada", "quantity": 5, "reason": "Compra", "created_at": "2024-03-01T10:00:00Z"}
			]}`)
		case "2":
			_, _ = io.WriteString(w, `{"current_page": 2, "last_page": 2, "data": [
				{"id": 2, "product_id": 2, "product": {"id": 2, "name": "Boné"}, "type": "saida", "quantity": 3, "reason": null, "created_at": "2024-03-02T10:00:00Z"}
			]}`)
		default:
			t.Errorf("página inesperada %q", r.URL.Query().Get("page"))
		}
	})

	movements, err := restapi.NewStockMovementRepository(client).List(context.Background())
	require.NoError(t, err)
	require.Len(t, movements, 2)

	// del más reciente al más antiguo
	assert.Equal(t, int64(2), movements[0].ID)
	assert.Equal(t, "Boné", movements[0].ProductName)
	assert.Equal(t, entity.MovementSaida, movements[0].Type)
	assert.Empty(t, movements[0].Reason)
	assert.Equal(t, "Camiseta", movements[1].ProductName)
}

func TestStockMovementRepository_RespetaMaxPages(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = io.WriteString(w, `{"current_page": 1, "last_page": 50, "data": []}`)
	}))
	t.Cleanup(srv.Close)

	client := restapi.NewClient(srv.URL, 5*time.Second, 3)
	_, err := restapi.NewStockMovementRepository(client).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestStockMovementRepository_Create(t *testing.T) {
	var body map[string]any
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"data": {"id": 10, "product_id": 4, "type": "saida", "quantity": 2, "created_at": "2024-03-02T10:00:00Z"}}`)
	})

	m, err := restapi.NewStockMovementRepository(client).Create(context.Background(), repository.StockMovementWrite{
		ProductID: 4, Type: entity.MovementSaida, Quantity: 2, Reason: "Venda",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), m.ID)
	assert.Equal(t, -2, m.SignedQuantity())

	assert.EqualValues(t, 4, body["product_id"])
	assert.Equal(t, "saida", body["type"])
	assert.Equal(t, "Venda", body["reason"])
	_, hasDate := body["happened_at"]
	assert.False(t, hasDate)
}

func TestProductRepository_CreateEnviaNumeros(t *testing.T) {
	var raw map[string]json.RawMessage
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_, _ = io.WriteString(w, `{"id": 5, "name": "Caneca", "sku": "CAN-1", "quantity": 4, "min_stock": 1, "price": 25.5, "cost": 12.13}`)
	})

	catID := int64(3)
	p, err := restapi.NewProductRepository(client).Create(context.Background(), repository.ProductWrite{
		Name: "Caneca", SKU: "CAN-1", Quantity: 4, MinStock: 1,
		Price: decimal.RequireFromString("25.50"), Cost: decimal.RequireFromString("12.125"), CategoryID: &catID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.ID)

	assert.Equal(t, "25.5", string(raw["price"]))
	assert.Equal(t, "12.13", string(raw["cost"]))
	assert.Equal(t, "1", string(raw["min_stock"]))
	assert.Equal(t, "3", string(raw["category_id"]))
}

func TestProductRepository_Delete(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/products/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})
	require.NoError(t, restapi.NewProductRepository(client).Delete(context.Background(), 7))
}

func TestAuthGateway_Login(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in["password"] != "secreta" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = io.WriteString(w, `{"message": "credenciais inválidas"}`)
			return
		}
		_, _ = io.WriteString(w, `{"token": "up-abc", "user": {"id": 7, "name": "Ana", "email": "ana@lojinha.test"}}`)
	})
	gw := restapi.NewAuthGateway(client)

	token, user, err := gw.Login(context.Background(), "ana@lojinha.test", "secreta")
	require.NoError(t, err)
	assert.Equal(t, "up-abc", token)
	assert.Equal(t, "7", user.ID)
	assert.Equal(t, "Ana", user.Name)

	_, _, err = gw.Login(context.Background(), "ana@lojinha.test", "errada")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.NotErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockMovementRepository_FechasSinZonaUsanLaZonaDeLaTienda(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[
			{"id": 1, "product_id": 1, "product_name": "Camiseta", "type": "entrada", "quantity": 5, "created_at": "2024-03-01 23:30:00"},
			{"id": 2, "product_id": 1, "product_name": "Camiseta", "type": "saida", "quantity": 1, "created_at": "2024-03-01T23:30:00Z"}
		]`)
	}))
	t.Cleanup(srv.Close)

	client := restapi.NewClient(srv.URL, 5*time.Second, 1).WithLocation(saoPaulo)
	movements, err := restapi.NewStockMovementRepository(client).List(context.Background())
	require.NoError(t, err)
	require.Len(t, movements, 2)

	byID := map[int64]time.Time{}
	for _, m := range movements {
		byID[m.ID] = m.CreatedAt
	}
	// sin zona: 23:30 de la tienda, sigue siendo 1 de marzo en São Paulo
	assert.True(t, byID[1].Equal(time.Date(2024, 3, 1, 23, 30, 0, 0, saoPaulo)))
	assert.Equal(t, 1, byID[1].In(saoPaulo).Day())
	// con zona explícita se respeta el offset
	assert.True(t, byID[2].Equal(time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)))
	assert.Equal(t, 1, byID[2].In(saoPaulo).Day())
}
