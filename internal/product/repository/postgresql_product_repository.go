// Package repository provides persistence implementations for products.
package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/storefront/internal/database"
	apperrors "github.com/allisson/storefront/internal/errors"
	productDomain "github.com/allisson/storefront/internal/product/domain"
)

const postgresProductColumns = `id, name, description, price, quantity, created_at, updated_at`

// PostgreSQLProductRepository handles product persistence for PostgreSQL.
type PostgreSQLProductRepository struct {
	db *sql.DB
}

// NewPostgreSQLProductRepository creates a new PostgreSQLProductRepository.
func NewPostgreSQLProductRepository(db *sql.DB) *PostgreSQLProductRepository {
	return &PostgreSQLProductRepository{db: db}
}

// Create inserts a product and fills its timestamps.
func (p *PostgreSQLProductRepository) Create(ctx context.Context, product *productDomain.Product) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO products (id, name, description, price, quantity, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
			  RETURNING created_at, updated_at`

	err := querier.QueryRowContext(
		ctx,
		query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.Quantity,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create product")
	}
	return nil
}

// Get retrieves a product by ID.
func (p *PostgreSQLProductRepository) Get(ctx context.Context, id uuid.UUID) (*productDomain.Product, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + postgresProductColumns + ` FROM products WHERE id = $1`

	var product productDomain.Product
	err := querier.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Quantity,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		if apperrors.Is(err, sql.ErrNoRows) {
			return nil, productDomain.ErrProductNotFound
		}
		return nil, apperrors.Wrapf(err, "failed to get product %s", id)
	}
	return &product, nil
}

// Update overwrites the writable fields of a product.
func (p *PostgreSQLProductRepository) Update(ctx context.Context, product *productDomain.Product) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE products SET name = $1, description = $2, price = $3, quantity = $4, updated_at = NOW()
			  WHERE id = $5
			  RETURNING created_at, updated_at`

	err := querier.QueryRowContext(
		ctx,
		query,
		product.Name,
		product.Description,
		product.Price,
		product.Quantity,
		product.ID,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if apperrors.Is(err, sql.ErrNoRows) {
			return productDomain.ErrProductNotFound
		}
		return apperrors.Wrap(err, "failed to update product")
	}
	return nil
}

// Delete removes a product.
func (p *PostgreSQLProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete product")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return productDomain.ErrProductNotFound
	}
	return nil
}

// List returns products ordered by creation time, newest first.
func (p *PostgreSQLProductRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*productDomain.Product, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + postgresProductColumns + ` FROM products
			  ORDER BY created_at DESC, id DESC
			  LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to list products (offset=%d, limit=%d)", offset, limit)
	}
	defer func() {
		_ = rows.Close()
	}()

	products := make([]*productDomain.Product, 0, limit)
	for rows.Next() {
		var product productDomain.Product
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.Quantity,
			&product.CreatedAt,
			&product.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan product")
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate products")
	}

	return products, nil
}
