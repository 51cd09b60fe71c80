package repository

import (
	"context"

	"github.com/jhoicas/cafetal-api/internal/domain/entity"
	"github.com/jhoicas/cafetal-api/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// StockFilter filtros del listado de saldos. Search busca en nombre, SKU y código de lote.
type StockFilter struct {
	WarehouseID *int64
	Category    string
	Quality     string
	Search      string
}

// StockRepository define el puerto para consultar saldos derivados del kardex.
// Usado dentro de transacciones para la validación de salidas.
type StockRepository interface {
	// Lock serializa escrituras sobre la llave hasta el fin de la transacción.
	Lock(ctx context.Context, key inventory.Key) error
	// Balance saldo actual de la llave (cero si no hay movimientos).
	Balance(ctx context.Context, key inventory.Key) (decimal.Decimal, error)
	// List página de saldos con descriptores y total de llaves que cumplen el filtro.
	List(ctx context.Context, f StockFilter, limit, offset int) ([]*entity.Stock, int, error)
	// Quantities saldos de todas las llaves que cumplen el filtro (para KPIs y alertas).
	Quantities(ctx context.Context, f StockFilter) ([]decimal.Decimal, error)
}
