package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/cafetal-api/internal/domain/entity"
	"github.com/jhoicas/cafetal-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productSelect = `
		SELECT p.product_id, p.sku, p.name, COALESCE(p.category_id, 0), COALESCE(p.uom_id, 0),
		       COALESCE(p.product_type, ''), COALESCE(c.name, ''), COALESCE(u.code, '')
		FROM cafetal.product p
		LEFT JOIN cafetal.product_category c ON c.category_id = p.category_id
		LEFT JOIN cafetal.unit_of_measure u ON u.uom_id = p.uom_id`

func scanProduct(row pgxScanner) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.SKU, &p.Name, &p.CategoryID, &p.UoMID, &p.ProductType, &p.Category, &p.UoM); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, productSelect+` WHERE p.product_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List busca por nombre o SKU (ILIKE) y por nombre de categoría, ordenado por nombre.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	a := &argList{}
	var conds []string
	if f.Search != "" {
		p := a.add("%" + f.Search + "%")
		conds = append(conds, fmt.Sprintf("(p.name ILIKE %[1]s OR p.sku ILIKE %[1]s)", p))
	}
	if f.Category != "" {
		conds = append(conds, "c.name = "+a.add(f.Category))
	}
	query := productSelect + whereClause(conds) + " ORDER BY p.name"
	if f.Limit > 0 {
		query += " LIMIT " + a.add(f.Limit)
	}

	rows, err := r.q.Query(ctx, query, a.args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
