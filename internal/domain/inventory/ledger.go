package inventory

import (
	"fmt"
	"strconv"

	"github.com/jhoicas/cafetal-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Key identifica un saldo: bodega + producto + lote (LotID 0 = sin lote).
type Key struct {
	WarehouseID int64
	ProductID   int64
	LotID       int64
}

// NewKey construye la llave a partir de un lote opcional.
func NewKey(warehouseID, productID int64, lotID *int64) Key {
	k := Key{WarehouseID: warehouseID, ProductID: productID}
	if lotID != nil {
		k.LotID = *lotID
	}
	return k
}

// HasLot indica si la llave está asociada a un lote.
func (k Key) HasLot() bool { return k.LotID != 0 }

// Lot devuelve el lote como puntero (nil si no hay lote), útil como parámetro SQL.
func (k Key) Lot() *int64 {
	if !k.HasLot() {
		return nil
	}
	id := k.LotID
	return &id
}

// String formato "w-p-lote" (o "w-p-NULL"); también es la llave del advisory lock.
func (k Key) String() string {
	lot := "NULL"
	if k.HasLot() {
		lot = strconv.FormatInt(k.LotID, 10)
	}
	return fmt.Sprintf("%d-%d-%s", k.WarehouseID, k.ProductID, lot)
}

// Ledger proyecta saldos por llave plegando movimientos en memoria.
// Es la misma agregación que hace el repositorio en SQL; el orden de aplicación no altera el resultado.
type Ledger struct {
	balances map[Key]decimal.Decimal
}

// NewLedger crea un ledger vacío.
func NewLedger() *Ledger {
	return &Ledger{balances: make(map[Key]decimal.Decimal)}
}

// Open fija el saldo de apertura de una llave (por ejemplo, saldo anterior a una página del kardex).
func (l *Ledger) Open(k Key, opening decimal.Decimal) {
	l.balances[k] = opening
}

// Apply suma el movimiento con su signo y devuelve el saldo resultante de la llave.
func (l *Ledger) Apply(k Key, t MovementType, qty decimal.Decimal) decimal.Decimal {
	b := l.balances[k].Add(Signed(t, qty))
	l.balances[k] = b
	return b
}

// Balance saldo actual de la llave (cero si no tiene movimientos).
func (l *Ledger) Balance(k Key) decimal.Decimal {
	return l.balances[k]
}

// CheckWithdrawal valida que retirar qty (magnitud) no deje el saldo en negativo.
func CheckWithdrawal(balance, qty decimal.Decimal) error {
	if balance.Sub(qty.Abs()).IsNegative() {
		return domain.ErrInsufficientStock
	}
	return nil
}
