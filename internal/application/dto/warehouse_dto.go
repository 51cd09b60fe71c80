package dto

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

// UnitOfMeasureResponse salida de una unidad de medida.
type UnitOfMeasureResponse struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description"`
}
