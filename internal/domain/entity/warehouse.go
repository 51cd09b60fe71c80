package entity

// Warehouse representa una bodega o almacén donde se guarda inventario.
type Warehouse struct {
	ID       int64
	Code     string
	Name     string
	Location string
}
