package entity

import (
	"time"

	"github.com/jhoicas/cafetal-api/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// InventoryMovement asiento inmutable del kardex. Nunca se actualiza ni se elimina.
type InventoryMovement struct {
	ID          int64
	Timestamp   time.Time
	WarehouseID int64
	ProductID   int64
	LotID       *int64
	Quantity    decimal.Decimal // magnitud (siempre > 0); el signo lo define Type
	UoMID       int64
	Type        inventory.MovementType
	RefType     *string
	RefID       *int64
	Notes       *string
}

// Key llave de saldo del movimiento.
func (m *InventoryMovement) Key() inventory.Key {
	return inventory.NewKey(m.WarehouseID, m.ProductID, m.LotID)
}

// SignedQuantity cantidad con el signo de su tipo.
func (m *InventoryMovement) SignedQuantity() decimal.Decimal {
	return inventory.Signed(m.Type, m.Quantity)
}
