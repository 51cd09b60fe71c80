package dto

import "github.com/shopspring/decimal"

// RegisterMovementRequest body para POST /api/v1/movements.
// Quantity negativa solo se admite para tipos de salida (se normaliza a magnitud).
type RegisterMovementRequest struct {
	WarehouseID  int64           `json:"warehouse_id"`
	ProductID    int64           `json:"product_id"`
	UoMID        int64           `json:"uom_id"`
	MovementType string          `json:"movement_type"`
	Quantity     decimal.Decimal `json:"qty"`
	LotID        *int64          `json:"lot_id,omitempty"`
	RefType      *string         `json:"ref_type,omitempty"`
	RefID        *int64          `json:"ref_id,omitempty"`
	Notes        *string         `json:"notes,omitempty"`
}

// RegisterMovementResponse acuse de registro (sin saldo resultante).
type RegisterMovementResponse struct {
	OK bool  `json:"ok"`
	ID int64 `json:"id"`
}

// StockWarehouseDTO bodega embebida en una fila de stock.
type StockWarehouseDTO struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// StockProductDTO producto embebido en una fila de stock.
type StockProductDTO struct {
	ID       int64  `json:"id"`
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Category string `json:"category"`
	UoM      string `json:"uom"`
}

// StockLotDTO lote embebido; todos los campos nulos cuando la llave no tiene lote.
type StockLotDTO struct {
	ID            *int64  `json:"id"`
	Code          *string `json:"code"`
	QualityStatus *string `json:"qualityStatus"`
	MfgDate       *string `json:"mfgDate"` // dd/MM/yyyy
	ExpDate       *string `json:"expDate"`
}

// QtyDTO cantidades de una fila. Reserved es 0 hasta que existan reservas.
type QtyDTO struct {
	Total     decimal.Decimal `json:"total"`
	Available decimal.Decimal `json:"available"`
	Reserved  decimal.Decimal `json:"reserved"`
}

// InventoryRowDTO fila del listado de stock.
type InventoryRowDTO struct {
	ID           string            `json:"id"` // "w-p-lote" o "w-p-NULL"
	Warehouse    StockWarehouseDTO `json:"warehouse"`
	Product      StockProductDTO   `json:"product"`
	Lot          StockLotDTO       `json:"lot"`
	Qty          QtyDTO            `json:"qty"`
	Alert        string            `json:"alert,omitempty"` // critical | low
	LastMovement *string           `json:"lastMovement"`
}

// InventoryPageDTO respuesta de GET /api/v1/inventory.
type InventoryPageDTO struct {
	Items    []InventoryRowDTO `json:"items"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
	Total    int               `json:"total"`
}

// KpiQtyDTO cantidad agregada con unidad y porcentaje opcional.
type KpiQtyDTO struct {
	Qty decimal.Decimal  `json:"qty"`
	UoM string           `json:"uom"`
	Pct *decimal.Decimal `json:"pct,omitempty"`
}

// AlertCountsDTO conteo de llaves en alerta.
type AlertCountsDTO struct {
	Critical int `json:"critical"`
	Low      int `json:"low"`
}

// InventoryKPIsDTO respuesta de GET /api/v1/inventory/kpis.
type InventoryKPIsDTO struct {
	TotalStock     KpiQtyDTO      `json:"totalStock"`
	AvailableStock KpiQtyDTO      `json:"availableStock"`
	ReservedStock  KpiQtyDTO      `json:"reservedStock"`
	Alerts         AlertCountsDTO `json:"alerts"`
}

// BalanceDTO respuesta de GET /api/v1/inventory/balance.
type BalanceDTO struct {
	ID          string          `json:"id"`
	WarehouseID int64           `json:"warehouseId"`
	ProductID   int64           `json:"productId"`
	LotID       *int64          `json:"lotId"`
	Balance     decimal.Decimal `json:"balance"`
}

// KardexProductDTO producto embebido en el kardex.
type KardexProductDTO struct {
	SKU  string `json:"sku"`
	Name string `json:"name"`
}

// KardexRefDTO documento de referencia del movimiento.
type KardexRefDTO struct {
	Type *string `json:"type"`
	ID   *int64  `json:"id"`
}

// KardexEntryDTO fila del kardex.
type KardexEntryDTO struct {
	ID        int64            `json:"id"`
	Datetime  string           `json:"datetime"` // dd/MM/yyyy HH:mm
	Type      string           `json:"type"`
	Direction string           `json:"direction"` // IN | OUT | UNKNOWN
	Qty       decimal.Decimal  `json:"qty"`
	UoM       string           `json:"uom"`
	Warehouse string           `json:"warehouse"`
	Product   KardexProductDTO `json:"product"`
	Lot       *string          `json:"lot"`
	Ref       KardexRefDTO     `json:"ref"`
	Notes     *string          `json:"notes"`
	Balance   decimal.Decimal  `json:"balance"` // saldo de la llave después del movimiento
}

// KardexPageDTO respuesta de GET /api/v1/inventory/kardex.
type KardexPageDTO struct {
	Items    []KardexEntryDTO `json:"items"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
	Total    int              `json:"total"`
}
