package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/storefront/internal/database"
	apperrors "github.com/allisson/storefront/internal/errors"
	productDomain "github.com/allisson/storefront/internal/product/domain"
)

const mysqlProductColumns = `id, name, description, price, quantity, created_at, updated_at`

// MySQLProductRepository handles product persistence for MySQL. IDs are stored as BINARY(16).
type MySQLProductRepository struct {
	db *sql.DB
}

// NewMySQLProductRepository creates a new MySQLProductRepository.
func NewMySQLProductRepository(db *sql.DB) *MySQLProductRepository {
	return &MySQLProductRepository{db: db}
}

// Create inserts a product. MySQL has no RETURNING, so timestamps are set here.
func (m *MySQLProductRepository) Create(ctx context.Context, product *productDomain.Product) error {
	querier := database.GetTx(ctx, m.db)

	id, err := product.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `INSERT INTO products (id, name, description, price, quantity, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		product.Name,
		product.Description,
		product.Price,
		product.Quantity,
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create product")
	}
	return nil
}

// Get retrieves a product by ID.
func (m *MySQLProductRepository) Get(ctx context.Context, id uuid.UUID) (*productDomain.Product, error) {
	querier := database.GetTx(ctx, m.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `SELECT ` + mysqlProductColumns + ` FROM products WHERE id = ?`

	product, err := scanMySQLProduct(querier.QueryRowContext(ctx, query, idBytes))
	if err != nil {
		if apperrors.Is(err, sql.ErrNoRows) {
			return nil, productDomain.ErrProductNotFound
		}
		return nil, apperrors.Wrapf(err, "failed to get product %s", id)
	}
	return product, nil
}

// Update overwrites the writable fields of a product.
func (m *MySQLProductRepository) Update(ctx context.Context, product *productDomain.Product) error {
	querier := database.GetTx(ctx, m.db)

	id, err := product.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := `UPDATE products SET name = ?, description = ?, price = ?, quantity = ?, updated_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(
		ctx,
		query,
		product.Name,
		product.Description,
		product.Price,
		product.Quantity,
		product.UpdatedAt,
		id,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update product")
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

// Delete removes a product.
func (m *MySQLProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, idBytes)
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
func (m *MySQLProductRepository) List(ctx context.Context, offset, limit int) ([]*productDomain.Product, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + mysqlProductColumns + ` FROM products
			  ORDER BY created_at DESC, id DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to list products (offset=%d, limit=%d)", offset, limit)
	}
	defer func() {
		_ = rows.Close()
	}()

	products := make([]*productDomain.Product, 0, limit)
	for rows.Next() {
		product, err := scanMySQLProduct(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan product")
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate products")
	}

	return products, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMySQLProduct(row rowScanner) (*productDomain.Product, error) {
	var product productDomain.Product
	var idBytes []byte
	err := row.Scan(
		&idBytes,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Quantity,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := product.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	return &product, nil
}
