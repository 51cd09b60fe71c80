package dto

import "github.com/shopspring/decimal"

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProductResponse salida de un producto del catálogo.
type ProductResponse struct {
	ID       int64  `json:"id"`
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Category string `json:"category"`
	UoM      string `json:"uom"`
}

// LotResponse salida de un lote. QtyAvailable es el valor en caché a la fecha RefreshedAt.
type LotResponse struct {
	ID            int64           `json:"id"`
	Code          string          `json:"code"`
	ProductID     int64           `json:"productId"`
	QualityStatus string          `json:"qualityStatus"`
	MfgDate       *string         `json:"mfgDate"`
	ExpDate       *string         `json:"expDate"`
	QtyInitial    decimal.Decimal `json:"qtyInitial"`
	QtyAvailable  decimal.Decimal `json:"qtyAvailable"`
	RefreshedAt   *string         `json:"refreshedAt"`
}
