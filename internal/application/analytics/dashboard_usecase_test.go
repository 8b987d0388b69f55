package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lojinha-control-api/internal/application/analytics"
	"github.com/jhoicas/lojinha-control-api/internal/domain/entity"
)

func dashboardMovements() []entity.StockMovement {
	return []entity.StockMovement{
		// 2024-03-15 01:00 BRT: hoy
		{ID: 7, ProductName: "Caneca", Type: entity.MovementEntrada, Quantity: 5, CreatedAt: time.Date(2024, 3, 15, 4, 0, 0, 0, time.UTC)},
		// 2024-03-15 00:30 BRT: hoy
		{ID: 6, ProductName: "Boné", Type: entity.MovementSaida, Quantity: 3, CreatedAt: time.Date(2024, 3, 15, 3, 30, 0, 0, time.UTC)},
		// 2024-03-14 23:30 BRT: ayer aunque en UTC ya sea 15
		{ID: 5, ProductName: "Boné", Type: entity.MovementSaida, Quantity: 1, CreatedAt: time.Date(2024, 3, 15, 2, 30, 0, 0, time.UTC)},
		{ID: 4, ProductName: "Camiseta", Type: entity.MovementSaida, Quantity: 2, CreatedAt: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)},
		{ID: 3, ProductName: "Camiseta", Type: entity.MovementEntrada, Quantity: 2, CreatedAt: time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)},
		{ID: 2, ProductName: "Adesivo", Type: entity.MovementEntrada, Quantity: 8, CreatedAt: time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)},
	}
}

func newDashboard(src analytics.Sources) *analytics.DashboardUseCase {
	return analytics.NewDashboardUseCase(src, saoPaulo()).WithClock(func() time.Time { return refNow })
}

func TestDashboardUseCase_GetSummary(t *testing.T) {
	uc := newDashboard(analytics.Sources{
		Products:   productsStub{items: sampleProducts()},
		Categories: categoriesStub{items: sampleCategories()},
		Movements:  movementsStub{items: dashboardMovements()},
	})

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, out.TotalProducts)
	// 0×50 + 3×30 + 20×25 + 8×2.50
	assert.Equal(t, "610.00", out.TotalValue.StringFixed(2))
	assert.Equal(t, "R$ 610,00", out.TotalValueText)
	assert.Equal(t, 3, out.LowStockCount)
	assert.Equal(t, 1, out.OutOfStockCount)
	assert.Equal(t, 2, out.CategoryCount)

	assert.Equal(t, 2, out.MovementsToday)
	assert.Equal(t, 2, out.NetDeltaToday)

	require.Len(t, out.RecentMovements, 5)
	assert.Equal(t, int64(7), out.RecentMovements[0].ID)

	require.Len(t, out.LowStockAlerts, 3)
	assert.Equal(t, "Camiseta", out.LowStockAlerts[0].Name)
	assert.Equal(t, "Boné", out.LowStockAlerts[1].Name)
	assert.Equal(t, "Adesivo", out.LowStockAlerts[2].Name)
	assert.Equal(t, "LOW", out.LowStockAlerts[2].Status)

	require.NotNil(t, out.AverageMargin)
	// (50 + 50 + 60 + 60) / 4
	assert.Equal(t, "55.00", out.AverageMargin.StringFixed(2))

	require.Len(t, out.CategoryChart, 3)
	assert.Equal(t, "Cozinha", out.CategoryChart[0].Category)
	assert.Equal(t, "hsl(38, 92%, 50%)", out.CategoryChart[0].Color)
	assert.Equal(t, "Sem categoria", out.CategoryChart[2].Category)
	assert.Empty(t, out.CategoryChart[2].Color)

	assert.Equal(t, 1, out.StatusBreakdown["OUT_OF_STOCK"])
	assert.Equal(t, 1, out.StatusBreakdown["CRITICAL"])
	assert.Equal(t, 1, out.StatusBreakdown["LOW"])
	assert.Equal(t, 1, out.StatusBreakdown["NORMAL"])
}

func TestDashboardUseCase_InventarioVacio(t *testing.T) {
	uc := newDashboard(analytics.Sources{
		Products:   productsStub{},
		Categories: categoriesStub{},
		Movements:  movementsStub{},
	})

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, out.TotalProducts)
	assert.True(t, out.TotalValue.IsZero())
	assert.Nil(t, out.AverageMargin)
	assert.NotNil(t, out.RecentMovements)
	assert.Empty(t, out.LowStockAlerts)
}

func TestDashboardUseCase_ErrorCancelaLasDemasLecturas(t *testing.T) {
	uc := newDashboard(analytics.Sources{
		Products:   productsStub{err: errUpstream},
		Categories: categoriesStub{},
		Movements:  movementsStub{block: true},
	})

	done := make(chan error, 1)
	go func() {
		_, err := uc.GetSummary(context.Background())
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, errUpstream)
	case <-time.After(2 * time.Second):
		t.Fatal("GetSummary no canceló la lectura bloqueada")
	}
}

func TestLowStockUseCase_List(t *testing.T) {
	uc := analytics.NewLowStockUseCase(productsStub{items: sampleProducts()})

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, 2, out.Critical)
	assert.Equal(t, 1, out.Warning)
	require.Len(t, out.Items, 3)
	require.NotNil(t, out.Items[1].StockRatio)
	assert.Equal(t, "30.00", out.Items[1].StockRatio.StringFixed(2))
}
