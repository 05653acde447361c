package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kardexcloud/kardex-api/internal/domain"
	"github.com/kardexcloud/kardex-api/internal/domain/entity"
	"github.com/kardexcloud/kardex-api/internal/domain/repository"
	"github.com/kardexcloud/kardex-api/pkg/normalize"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// Mantiene la columna search_name (nombre normalizado sin acentos) para la
// búsqueda insensible a mayúsculas y diacríticos.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, company_id, code, name, search_name, description, requires_lot, requires_serial, allows_negative_stock, expiry_days, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.CompanyID, product.Code, product.Name, normalize.Search(product.Name),
		product.Description, product.RequiresLot, product.RequiresSerial, product.AllowsNegativeStock,
		product.ExpiryDays, product.Active, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID dentro de la empresa.
func (r *ProductRepo) GetByID(id, companyID string) (*entity.Product, error) {
	query := selectProduct + ` WHERE id = $1 AND company_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, companyID))
}

// GetByCode obtiene un producto por código dentro de la empresa.
func (r *ProductRepo) GetByCode(code, companyID string) (*entity.Product, error) {
	query := selectProduct + ` WHERE code = $1 AND company_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code, companyID))
}

// ListByCompany lista productos de la empresa.
func (r *ProductRepo) ListByCompany(companyID string, onlyActive bool, limit, offset int) ([]*entity.Product, error) {
	query := selectProduct + `
		WHERE company_id = $1 AND ($2 = false OR active = true)
		ORDER BY code LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, companyID, onlyActive, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// Search busca productos activos por código o nombre. El término se
// normaliza (minúsculas, sin acentos) y se compara contra el código y el
// nombre normalizado.
func (r *ProductRepo) Search(companyID, query string, limit int) ([]*entity.Product, error) {
	term := "%" + normalize.Search(query) + "%"
	sql := selectProduct + `
		WHERE company_id = $1 AND active = true
		  AND (LOWER(code) LIKE $2 OR search_name LIKE $2)
		ORDER BY code LIMIT $3`
	rows, err := r.q.Query(context.Background(), sql, companyID, term, limit)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// Update actualiza metadatos, banderas y estado del producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $1, search_name = $2, description = $3, requires_lot = $4, requires_serial = $5,
		    allows_negative_stock = $6, expiry_days = $7, active = $8, updated_at = $9
		WHERE id = $10 AND company_id = $11`
	tag, err := r.q.Exec(context.Background(), query,
		product.Name, normalize.Search(product.Name), product.Description,
		product.RequiresLot, product.RequiresSerial, product.AllowsNegativeStock,
		product.ExpiryDays, product.Active, product.UpdatedAt,
		product.ID, product.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

const selectProduct = `
	SELECT id, company_id, code, name, description, requires_lot, requires_serial, allows_negative_stock, expiry_days, active, created_at, updated_at
	FROM products`

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.CompanyID, &p.Code, &p.Name, &p.Description,
		&p.RequiresLot, &p.RequiresSerial, &p.AllowsNegativeStock,
		&p.ExpiryDays, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepo) scanMany(rows pgx.Rows) ([]*entity.Product, error) {
	var products []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.Code, &p.Name, &p.Description,
			&p.RequiresLot, &p.RequiresSerial, &p.AllowsNegativeStock,
			&p.ExpiryDays, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}
