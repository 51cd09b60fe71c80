package repository

import (
	"context"

	"github.com/jhoicas/cafetal-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de lectura de bodegas (DIP).
type WarehouseRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Warehouse, error)
	List(ctx context.Context) ([]*entity.Warehouse, error)
}

// UnitOfMeasureRepository define el puerto de lectura de unidades de medida.
type UnitOfMeasureRepository interface {
	List(ctx context.Context) ([]*entity.UnitOfMeasure, error)
}
