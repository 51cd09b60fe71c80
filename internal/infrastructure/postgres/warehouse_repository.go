package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/cafetal-api/internal/domain/entity"
	"github.com/jhoicas/cafetal-api/internal/domain/repository"
)

var (
	_ repository.WarehouseRepository     = (*WarehouseRepo)(nil)
	_ repository.UnitOfMeasureRepository = (*UnitOfMeasureRepo)(nil)
)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	pool *pgxpool.Pool
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas.
func NewWarehouseRepository(pool *pgxpool.Pool) *WarehouseRepo {
	return &WarehouseRepo{pool: pool}
}

// GetByID obtiene una bodega por ID. Devuelve nil, nil si no existe.
func (r *WarehouseRepo) GetByID(ctx context.Context, id int64) (*entity.Warehouse, error) {
	query := `
		SELECT warehouse_id, code, name, COALESCE(location, '')
		FROM cafetal.warehouse WHERE warehouse_id = $1`
	var w entity.Warehouse
	err := r.pool.QueryRow(ctx, query, id).Scan(&w.ID, &w.Code, &w.Name, &w.Location)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// List lista todas las bodegas ordenadas por nombre.
func (r *WarehouseRepo) List(ctx context.Context) ([]*entity.Warehouse, error) {
	query := `
		SELECT warehouse_id, code, name, COALESCE(location, '')
		FROM cafetal.warehouse ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()

	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.Code, &w.Name, &w.Location); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// UnitOfMeasureRepo lectura de unidades de medida.
type UnitOfMeasureRepo struct {
	pool *pgxpool.Pool
}

// NewUnitOfMeasureRepository construye el adaptador.
func NewUnitOfMeasureRepository(pool *pgxpool.Pool) *UnitOfMeasureRepo {
	return &UnitOfMeasureRepo{pool: pool}
}

// List lista las unidades ordenadas por código.
func (r *UnitOfMeasureRepo) List(ctx context.Context) ([]*entity.UnitOfMeasure, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT uom_id, code, COALESCE(description, '')
		FROM cafetal.unit_of_measure ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list uoms: %w", err)
	}
	defer rows.Close()

	var list []*entity.UnitOfMeasure
	for rows.Next() {
		var u entity.UnitOfMeasure
		if err := rows.Scan(&u.ID, &u.Code, &u.Description); err != nil {
			return nil, fmt.Errorf("scan uom: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
