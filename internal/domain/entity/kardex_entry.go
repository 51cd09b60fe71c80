package entity

import "github.com/shopspring/decimal"

// KardexEntry movimiento con los descriptores de bodega, producto, lote y unidad.
// BalanceAfter es el saldo de la llave inmediatamente después del movimiento.
type KardexEntry struct {
	InventoryMovement
	UoMCode       string
	WarehouseCode string
	ProductSKU    string
	ProductName   string
	LotCode       *string
	BalanceAfter  decimal.Decimal
}
