package repositories

import (
	"context"
	"database/sql"
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/agnostic-bookmarks/internal/logger"
	"github.com/sbilibin2017/agnostic-bookmarks/internal/models"
)

// executor returns the request transaction when there is one.
func executor(ctx context.Context, db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// BookmarkReadRepository handles bookmark reads
type BookmarkReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBookmarkReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BookmarkReadRepository {
	return &BookmarkReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns nil, nil when the bookmark does not exist.
func (r *BookmarkReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Bookmark, error) {
	const query = `
		SELECT id, owner_id, url, name, description, tags, created_at
		FROM bookmarks
		WHERE id = $1
	`
	return r.getOne(ctx, query, id)
}

// GetByOwnerAndURL returns nil, nil when the owner has no bookmark with that url.
func (r *BookmarkReadRepository) GetByOwnerAndURL(ctx context.Context, ownerID uuid.UUID, url string) (*models.Bookmark, error) {
	const query = `
		SELECT id, owner_id, url, name, description, tags, created_at
		FROM bookmarks
		WHERE owner_id = $1 AND url = $2
	`
	return r.getOne(ctx, query, ownerID, url)
}

func (r *BookmarkReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.Bookmark, error) {
	var b models.Bookmark
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &b, query, args...)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", args,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// List returns one page of the owner's bookmarks matching f.
func (r *BookmarkReadRepository) List(ctx context.Context, ownerID uuid.UUID, f models.BookmarkFilter) ([]models.Bookmark, error) {
	query, args, err := buildListQuery(ownerID, f)
	if err != nil {
		return nil, err
	}

	bookmarks := []models.Bookmark{}
	err = sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &bookmarks, query, args...)

	logger.Log.Infow(
		"query", query,
		"args", args,
		"result", len(bookmarks),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// ListTags returns the distinct tags used by the owner, sorted.
func (r *BookmarkReadRepository) ListTags(ctx context.Context, ownerID uuid.UUID) ([]string, error) {
	const query = `
		SELECT DISTINCT tag
		FROM bookmarks, jsonb_array_elements_text(bookmarks.tags) AS tag
		WHERE owner_id = $1
	`

	tags := []string{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &tags, query, ownerID)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{ownerID},
		"result", len(tags),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	sort.Strings(tags)
	return tags, nil
}

// BookmarkWriteRepository handles bookmark writes
type BookmarkWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBookmarkWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BookmarkWriteRepository {
	return &BookmarkWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts b and fills in its creation time.
// A url the owner already bookmarked yields ErrConflict.
func (r *BookmarkWriteRepository) Create(ctx context.Context, b *models.Bookmark) error {
	const query = `
		INSERT INTO bookmarks (id, owner_id, url, name, description, tags, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`
	args := []any{b.BookmarkID, b.OwnerID, b.URL, b.Name, b.Description, b.Tags}

	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &b.CreatedAt, query, args...)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", args,
		"result", b.CreatedAt,
		"error", err,
	)

	return translateError(err)
}

// Update stores the mutable fields of b. Owner and creation time are never written.
func (r *BookmarkWriteRepository) Update(ctx context.Context, b *models.Bookmark) error {
	const query = `
		UPDATE bookmarks
		SET url = $2, name = $3, description = $4, tags = $5
		WHERE id = $1
	`
	args := []any{b.BookmarkID, b.URL, b.Name, b.Description, b.Tags}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", oneLine(query),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return translateError(err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *BookmarkWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM bookmarks WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
