package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/storefront/internal/user/domain"
)

func newMySQLMock(t *testing.T) (*MySQLUserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewMySQLUserRepository(db), mock
}

func TestMySQLUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{
		ID:       uuid.Must(uuid.NewV7()),
		Username: "user",
		Email:    "user@example.com",
		Password: "$argon2id$hash",
		Role:     "USER",
		Enabled:  true,
	}
	idBytes, err := user.ID.MarshalBinary()
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		repo, mock := newMySQLMock(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs(idBytes, user.Username, user.Email, user.Password, user.Role, user.Enabled).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Create(ctx, user))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_DuplicateEntry", func(t *testing.T) {
		repo, mock := newMySQLMock(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'user'"})

		assert.ErrorIs(t, repo.Create(ctx, user), domain.ErrUserAlreadyExists)
	})

	t.Run("Error_Database", func(t *testing.T) {
		repo, mock := newMySQLMock(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
			WillReturnError(errors.New("bad connection"))

		err := repo.Create(ctx, user)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrUserAlreadyExists)
	})
}

func TestMySQLUserRepository_GetByUsername(t *testing.T) {
	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())
	idBytes, err := id.MarshalBinary()
	require.NoError(t, err)
	now := time.Now().UTC()

	t.Run("Success", func(t *testing.T) {
		repo, mock := newMySQLMock(t)
		rows := sqlmock.NewRows(userRowColumns).
			AddRow(idBytes, "admin", "admin@example.com", "$argon2id$hash", "ADMIN", true, now, now)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = BINARY ?")).
			WithArgs("admin").
			WillReturnRows(rows)

		user, err := repo.GetByUsername(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "ADMIN", user.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		repo, mock := newMySQLMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = BINARY ?")).
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByUsername(ctx, "Admin")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("Error_InvalidStoredID", func(t *testing.T) {
		repo, mock := newMySQLMock(t)
		rows := sqlmock.NewRows(userRowColumns).
			AddRow([]byte{0x01}, "admin", "admin@example.com", "$argon2id$hash", "ADMIN", true, now, now)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = BINARY ?")).
			WillReturnRows(rows)

		user, err := repo.GetByUsername(ctx, "admin")
		assert.Nil(t, user)
		assert.Error(t, err)
	})
}

func TestMySQLUserRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())
	idBytes, err := id.MarshalBinary()
	require.NoError(t, err)

	repo, mock := newMySQLMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = ?")).
		WithArgs(idBytes).
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetByID(ctx, id)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
