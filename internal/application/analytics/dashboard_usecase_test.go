package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafetal-api/internal/domain/entity"
	"github.com/jhoicas/cafetal-api/internal/domain/inventory"
	"github.com/jhoicas/cafetal-api/internal/domain/repository"
)

type fakeStock struct {
	qtys []decimal.Decimal
	err  error
}

func (f *fakeStock) Lock(ctx context.Context, key inventory.Key) error { return nil }
func (f *fakeStock) Balance(ctx context.Context, key inventory.Key) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (f *fakeStock) List(ctx context.Context, _ repository.StockFilter, limit, offset int) ([]*entity.Stock, int, error) {
	return nil, 0, nil
}
func (f *fakeStock) Quantities(ctx context.Context, _ repository.StockFilter) ([]decimal.Decimal, error) {
	return f.qtys, f.err
}

type fakeAnalytics struct {
	cats     []repository.CategoryStockResult
	products []repository.ProductStockResult
	limit    int
}

func (f *fakeAnalytics) StockByCategory(ctx context.Context) ([]repository.CategoryStockResult, error) {
	return f.cats, nil
}

func (f *fakeAnalytics) LowestStockProducts(ctx context.Context, limit int) ([]repository.ProductStockResult, error) {
	f.limit = limit
	return f.products, nil
}

func ints(v ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(v))
	for _, n := range v {
		out = append(out, decimal.NewFromInt(n))
	}
	return out
}

func TestOverview_KPIsSeriesYAlertas(t *testing.T) {
	an := &fakeAnalytics{
		cats: []repository.CategoryStockResult{
			{Category: "Café verde", Qty: decimal.NewFromInt(300)},
			{Category: "Empaques", Qty: decimal.Zero},
		},
		products: []repository.ProductStockResult{
			{ProductID: 4, SKU: "EMP-01", Name: "Bolsa 250g", Qty: decimal.Zero},
		},
	}
	uc := NewDashboardUseCase(&fakeStock{qtys: ints(0, 5, 45, 250)}, an, inventory.DefaultAlertThresholds(), "kg")

	out, err := uc.Overview(context.Background())
	require.NoError(t, err)

	assert.True(t, out.KPIs.StockTotal.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, "kg", out.KPIs.UoM)
	assert.Equal(t, 3, out.KPIs.KeysInStock)
	assert.Equal(t, 1, out.KPIs.CriticalKeys)
	assert.Equal(t, 1, out.KPIs.LowKeys)

	require.Len(t, out.Series.StockByCategory, 2)
	assert.Equal(t, "Empaques", out.Series.StockByCategory[1].Category)
	assert.True(t, out.Series.StockByCategory[1].Qty.IsZero())

	require.Len(t, out.Alerts.LowStock, 1)
	assert.Equal(t, "EMP-01", out.Alerts.LowStock[0].SKU)
	assert.Equal(t, dashboardLowStockTop, an.limit)
}

func TestOverview_ErrorDeRepositorio(t *testing.T) {
	uc := NewDashboardUseCase(&fakeStock{err: errors.New("timeout")}, &fakeAnalytics{}, inventory.DefaultAlertThresholds(), "kg")
	_, err := uc.Overview(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dashboard: saldos")
}
