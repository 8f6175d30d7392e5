package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/agnostic-bookmarks/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserReadRepository_GetByUsername(t *testing.T) {
	query := regexp.QuoteMeta("SELECT id, username, password_hash, created_at FROM users WHERE username = $1")
	id := uuid.New()
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
				AddRow(id.String(), "alice", "hash", now))

		user, err := NewUserReadRepository(db).GetByUsername(context.Background(), "alice")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, id, user.UserID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "hash", user.PasswordHash)
		assert.Equal(t, now, user.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs("bob").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}))

		user, err := NewUserReadRepository(db).GetByUsername(context.Background(), "bob")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("db error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WithArgs("bob").WillReturnError(errors.New("boom"))

		user, err := NewUserReadRepository(db).GetByUsername(context.Background(), "bob")
		assert.EqualError(t, err, "boom")
		assert.Nil(t, user)
	})
}

func TestUserWriteRepository_Save(t *testing.T) {
	query := regexp.QuoteMeta("INSERT INTO users (id, username, password_hash, created_at)")

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		now := time.Now().UTC()
		user := &models.User{UserID: uuid.New(), Username: "alice", PasswordHash: "hash"}

		mock.ExpectQuery(query).
			WithArgs(user.UserID, "alice", "hash").
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

		err := NewUserWriteRepository(db).Save(context.Background(), user)
		require.NoError(t, err)
		assert.Equal(t, now, user.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate username", func(t *testing.T) {
		db, mock := newMockDB(t)
		user := &models.User{UserID: uuid.New(), Username: "alice", PasswordHash: "hash"}

		mock.ExpectQuery(query).
			WithArgs(user.UserID, "alice", "hash").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

		err := NewUserWriteRepository(db).Save(context.Background(), user)
		assert.ErrorIs(t, err, ErrConflict)
		assert.Contains(t, err.Error(), "users_username_key")
	})
}

func TestTranslateError(t *testing.T) {
	assert.Nil(t, translateError(nil))

	other := errors.New("other")
	assert.Equal(t, other, translateError(other))

	fk := &pgconn.PgError{Code: "23503"}
	assert.Equal(t, error(fk), translateError(fk))
	assert.NotErrorIs(t, translateError(fk), ErrConflict)
}
