package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/storefront/internal/product/domain"
)

func newMySQLMock(t *testing.T) (*MySQLProductRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewMySQLProductRepository(db), mock
}

func TestMySQLProductRepository_Create(t *testing.T) {
	ctx := context.Background()
	product := newTestProduct()
	product.CreatedAt = time.Now().UTC()
	product.UpdatedAt = product.CreatedAt
	idBytes, err := product.ID.MarshalBinary()
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		repo, mock := newMySQLMock(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO products")).
			WithArgs(
				idBytes,
				product.Name,
				product.Description,
				product.Price.String(),
				product.Quantity,
				product.CreatedAt,
				product.UpdatedAt,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Create(ctx, product))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_Database", func(t *testing.T) {
		repo, mock := newMySQLMock(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO products")).
			WillReturnError(errors.New("connection reset"))

		assert.Error(t, repo.Create(ctx, product))
	})
}

func TestMySQLProductRepository_Get(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	product := newTestProduct()
	idBytes, err := product.ID.MarshalBinary()
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		repo, mock := newMySQLMock(t)
		rows := sqlmock.NewRows(productRowColumns).AddRow(
			idBytes, product.Name, product.Description, product.Price.String(), product.Quantity, now, now,
		)
		mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE id = ?")).
			WithArgs(idBytes).
			WillReturnRows(rows)

		got, err := repo.Get(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, product.ID, got.ID)
		assert.Equal(t, product.Name, got.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		repo, mock := newMySQLMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE id = ?")).
			WithArgs(idBytes).
			WillReturnRows(sqlmock.NewRows(productRowColumns))

		_, err := repo.Get(ctx, product.ID)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("Error_InvalidStoredID", func(t *testing.T) {
		repo, mock := newMySQLMock(t)
		rows := sqlmock.NewRows(productRowColumns).AddRow(
			[]byte{0x01}, product.Name, product.Description, product.Price.String(), product.Quantity, now, now,
		)
		mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE id = ?")).
			WillReturnRows(rows)

		_, err := repo.Get(ctx, product.ID)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestMySQLProductRepository_Update(t *testing.T) {
	ctx := context.Background()
	product := newTestProduct()
	product.UpdatedAt = time.Now().UTC()
	idBytes, err := product.ID.MarshalBinary()
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		repo, mock := newMySQLMock(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET")).
			WithArgs(product.Name, product.Description, product.Price.String(), product.Quantity, product.UpdatedAt, idBytes).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(ctx, product))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		repo, mock := newMySQLMock(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Update(ctx, product), domain.ErrProductNotFound)
	})
}

func TestMySQLProductRepository_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())
	idBytes, err := id.MarshalBinary()
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		repo, mock := newMySQLMock(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM products WHERE id = ?")).
			WithArgs(idBytes).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, id))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		repo, mock := newMySQLMock(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM products WHERE id = ?")).
			WithArgs(idBytes).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, id), domain.ErrProductNotFound)
	})
}

func TestMySQLProductRepository_List(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	product := newTestProduct()
	idBytes, err := product.ID.MarshalBinary()
	require.NoError(t, err)

	repo, mock := newMySQLMock(t)
	rows := sqlmock.NewRows(productRowColumns).AddRow(
		idBytes, product.Name, product.Description, product.Price.String(), product.Quantity, now, now,
	)
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT ? OFFSET ?")).
		WithArgs(20, 40).
		WillReturnRows(rows)

	products, err := repo.List(ctx, 40, 20)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, product.ID, products[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
