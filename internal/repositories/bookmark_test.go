package repositories

import (
	"context"
	"database/sql"
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

var bookmarkRowColumns = []string{"id", "owner_id", "url", "name", "description", "tags", "created_at"}

func TestBookmarkReadRepository_GetByID(t *testing.T) {
	query := regexp.QuoteMeta("FROM bookmarks WHERE id = $1")
	id, owner := uuid.New(), uuid.New()
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(bookmarkRowColumns).
				AddRow(id.String(), owner.String(), "http://a.com", "A", "desc", []byte(`["x","y"]`), now))

		b, err := NewBookmarkReadRepository(db, nil).GetByID(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, b)
		assert.Equal(t, id, b.BookmarkID)
		assert.Equal(t, owner, b.OwnerID)
		assert.Equal(t, "http://a.com", b.URL)
		assert.Equal(t, models.Tags{"x", "y"}, b.Tags)
		assert.Equal(t, now, b.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WithArgs(id).WillReturnRows(sqlmock.NewRows(bookmarkRowColumns))

		b, err := NewBookmarkReadRepository(db, nil).GetByID(context.Background(), id)
		assert.NoError(t, err)
		assert.Nil(t, b)
	})

	t.Run("error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WithArgs(id).WillReturnError(sql.ErrConnDone)

		b, err := NewBookmarkReadRepository(db, nil).GetByID(context.Background(), id)
		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.Nil(t, b)
	})
}

func TestBookmarkReadRepository_GetByIDInTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM bookmarks WHERE id = $1")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(bookmarkRowColumns))
	mock.ExpectRollback()

	tx, err := db.Beginx()
	require.NoError(t, err)

	repo := NewBookmarkReadRepository(db, func(ctx context.Context) *sqlx.Tx { return tx })
	b, err := repo.GetByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, b)

	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookmarkReadRepository_GetByOwnerAndURL(t *testing.T) {
	db, mock := newMockDB(t)
	id, owner := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE owner_id = $1 AND url = $2")).
		WithArgs(owner, "http://a.com").
		WillReturnRows(sqlmock.NewRows(bookmarkRowColumns).
			AddRow(id.String(), owner.String(), "http://a.com", "A", "", nil, time.Now()))

	b, err := NewBookmarkReadRepository(db, nil).GetByOwnerAndURL(context.Background(), owner, "http://a.com")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, id, b.BookmarkID)
	assert.Equal(t, models.Tags{}, b.Tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookmarkReadRepository_List(t *testing.T) {
	owner := uuid.New()
	filter := models.BookmarkFilter{SortBy: models.SortByDate, Offset: 1, PageSize: 10, Tags: []string{"a", "b"}}

	t.Run("page", func(t *testing.T) {
		db, mock := newMockDB(t)
		rows := sqlmock.NewRows(bookmarkRowColumns).
			AddRow(uuid.NewString(), owner.String(), "http://1.com", "one", "", []byte(`["a","b"]`), time.Now()).
			AddRow(uuid.NewString(), owner.String(), "http://2.com", "two", "", []byte(`["b","a","c"]`), time.Now())

		mock.ExpectQuery(regexp.QuoteMeta("AND tags @> $2::jsonb ORDER BY created_at DESC, id ASC LIMIT $3 OFFSET $4")).
			WithArgs(owner, `["a","b"]`, 10, 10).
			WillReturnRows(rows)

		got, err := NewBookmarkReadRepository(db, nil).List(context.Background(), owner, filter)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "one", got[0].Name)
		assert.Equal(t, models.Tags{"b", "a", "c"}, got[1].Tags)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty page is not nil", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(bookmarkRowColumns))

		got, err := NewBookmarkReadRepository(db, nil).List(context.Background(), owner, filter)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT").WillReturnError(errors.New("boom"))

		got, err := NewBookmarkReadRepository(db, nil).List(context.Background(), owner, filter)
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestBookmarkReadRepository_ListTags(t *testing.T) {
	db, mock := newMockDB(t)
	owner := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("jsonb_array_elements_text(bookmarks.tags)")).
		WithArgs(owner).
		WillReturnRows(sqlmock.NewRows([]string{"tag"}).AddRow("go").AddRow("db").AddRow("api"))

	tags, err := NewBookmarkReadRepository(db, nil).ListTags(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, []string{"api", "db", "go"}, tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookmarkWriteRepository_Create(t *testing.T) {
	query := regexp.QuoteMeta("INSERT INTO bookmarks (id, owner_id, url, name, description, tags, created_at)")
	newBookmark := func() *models.Bookmark {
		return &models.Bookmark{
			BookmarkID: uuid.New(),
			OwnerID:    uuid.New(),
			URL:        "http://a.com",
			Name:       "A",
			Tags:       models.Tags{"x"},
		}
	}

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		b := newBookmark()
		now := time.Now().UTC()

		mock.ExpectQuery(query).
			WithArgs(b.BookmarkID, b.OwnerID, "http://a.com", "A", "", `["x"]`).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

		err := NewBookmarkWriteRepository(db, nil).Create(context.Background(), b)
		require.NoError(t, err)
		assert.Equal(t, now, b.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate url", func(t *testing.T) {
		db, mock := newMockDB(t)
		b := newBookmark()

		mock.ExpectQuery(query).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "bookmarks_owner_url_key"})

		err := NewBookmarkWriteRepository(db, nil).Create(context.Background(), b)
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestBookmarkWriteRepository_Update(t *testing.T) {
	query := regexp.QuoteMeta("UPDATE bookmarks SET url = $2, name = $3, description = $4, tags = $5 WHERE id = $1")
	b := &models.Bookmark{BookmarkID: uuid.New(), URL: "http://new.com", Name: "New", Description: "d", Tags: models.Tags{"t"}}

	t.Run("success in transaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(query).
			WithArgs(b.BookmarkID, "http://new.com", "New", "d", `["t"]`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.Beginx()
		require.NoError(t, err)

		repo := NewBookmarkWriteRepository(db, func(ctx context.Context) *sqlx.Tx { return tx })
		require.NoError(t, repo.Update(context.Background(), b))
		require.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(query).WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewBookmarkWriteRepository(db, nil).Update(context.Background(), b)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("conflict", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(query).WillReturnError(&pgconn.PgError{Code: "23505"})

		err := NewBookmarkWriteRepository(db, nil).Update(context.Background(), b)
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestBookmarkWriteRepository_Delete(t *testing.T) {
	query := regexp.QuoteMeta("DELETE FROM bookmarks WHERE id = $1")
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(query).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewBookmarkWriteRepository(db, nil).Delete(context.Background(), id))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(query).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, NewBookmarkWriteRepository(db, nil).Delete(context.Background(), id), sql.ErrNoRows)
	})

	t.Run("error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(query).WithArgs(id).WillReturnError(errors.New("boom"))

		assert.EqualError(t, NewBookmarkWriteRepository(db, nil).Delete(context.Background(), id), "boom")
	})
}
