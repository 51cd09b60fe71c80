package entity

// ProductCategory categoría de productos (café verde, tostado, insumos, etc.).
type ProductCategory struct {
	ID   int64
	Name string
}
