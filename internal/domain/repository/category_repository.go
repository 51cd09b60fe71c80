package repository

import (
	"context"

	"github.com/jhoicas/cafetal-api/internal/domain/entity"
)

// CategoryRepository define el puerto de lectura de categorías de producto.
type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.ProductCategory, error)
}
