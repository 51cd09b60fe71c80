package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// CategoryStockResult saldo agregado por categoría.
type CategoryStockResult struct {
	Category string
	Qty      decimal.Decimal
}

// ProductStockResult saldo agregado de un producto (todas las bodegas y lotes).
type ProductStockResult struct {
	ProductID int64
	SKU       string
	Name      string
	Qty       decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para el dashboard.
type AnalyticsRepository interface {
	StockByCategory(ctx context.Context) ([]CategoryStockResult, error)
	LowestStockProducts(ctx context.Context, limit int) ([]ProductStockResult, error)
}
