package entity

import (
	"time"

	"github.com/jhoicas/cafetal-api/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// Stock saldo derivado de una llave (bodega, producto, lote) con sus descriptores.
// No se persiste: se calcula en cada lectura agregando el kardex.
type Stock struct {
	Key          inventory.Key
	QtyOnHand    decimal.Decimal
	LastMovement *time.Time

	WarehouseCode string
	WarehouseName string
	ProductSKU    string
	ProductName   string
	CategoryName  string
	UoMCode       string

	// Campos del lote; vacíos cuando la llave no tiene lote.
	LotCode        *string
	QualityStatus  *string
	ProductionDate *time.Time
	ExpirationDate *time.Time
}
