package repository

import (
	"context"

	"github.com/jhoicas/cafetal-api/internal/domain/entity"
)

// ProductFilter filtros del catálogo de productos. Search busca en nombre y SKU.
type ProductFilter struct {
	Search   string
	Category string
	Limit    int
}

// ProductRepository define el puerto de lectura de productos (DIP).
type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context, f ProductFilter) ([]*entity.Product, error)
}
