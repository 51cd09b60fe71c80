package entity

// Product representa un producto o SKU del catálogo.
// Category y UoM se llenan con los nombres/códigos al leer desde el catálogo (joins).
type Product struct {
	ID          int64
	SKU         string
	Name        string
	CategoryID  int64
	UoMID       int64
	ProductType string
	Category    string
	UoM         string
}
