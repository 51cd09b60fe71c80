package repository

import (
	"context"

	"github.com/jhoicas/cafetal-api/internal/domain/entity"
)

// LotFilter filtros para listar lotes.
type LotFilter struct {
	ProductID *int64
	Quality   string
	Limit     int
}

// LotRepository define el puerto de lotes.
type LotRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Lot, error)
	List(ctx context.Context, f LotFilter) ([]*entity.Lot, error)

	// RefreshAvailable recalcula qty_available de todos los lotes desde el kardex.
	// Devuelve el número de lotes actualizados.
	RefreshAvailable(ctx context.Context) (int64, error)
}
