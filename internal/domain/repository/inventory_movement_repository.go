package repository

import (
	"context"
	"time"

	"github.com/jhoicas/cafetal-api/internal/domain/entity"
	"github.com/jhoicas/cafetal-api/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// KardexFilter filtros del kardex; todos opcionales y combinados con AND.
// DateFrom/DateTo se comparan por día (inclusive). Limit 0 = sin límite.
type KardexFilter struct {
	WarehouseID *int64
	ProductID   *int64
	LotID       *int64
	DateFrom    *time.Time
	DateTo      *time.Time
	Limit       int
	Offset      int
}

// InventoryMovementRepository define el puerto del kardex (solo inserción y lectura).
type InventoryMovementRepository interface {
	// Create inserta el movimiento y asigna ID y Timestamp devueltos por la BD.
	Create(ctx context.Context, movement *entity.InventoryMovement) error

	// History devuelve la página del kardex ordenada por (fecha, id) y el total de filas.
	History(ctx context.Context, f KardexFilter) ([]*entity.KardexEntry, int, error)

	// BalancesBefore saldo por llave de los movimientos (filtrados por bodega/producto/lote)
	// ordenados antes de (ts, id). Se usa como saldo de apertura de una página del kardex.
	BalancesBefore(ctx context.Context, f KardexFilter, ts time.Time, id int64) (map[inventory.Key]decimal.Decimal, error)
}
