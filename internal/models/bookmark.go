package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Bookmark is a saved link owned by a single user.
type Bookmark struct {
	BookmarkID  uuid.UUID `json:"_id" db:"id"`
	OwnerID     uuid.UUID `json:"owner" db:"owner_id"`
	URL         string    `json:"url" db:"url"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Tags        Tags      `json:"tags" db:"tags"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Tags is a list of labels stored as a JSONB array.
type Tags []string

// Value implements driver.Valuer.
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (t *Tags) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = Tags{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("tags: unsupported source type %T", src)
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("tags: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*t = out
	return nil
}

// CreateBookmarkRequest represents the JSON body for bookmark creation
// swagger:model CreateBookmarkRequest
type CreateBookmarkRequest struct {
	// Bookmark name
	// required: true
	// example: Go documentation
	Name string `json:"name" validate:"required"`

	// Bookmark URL, unique per owner
	// required: true
	// example: https://go.dev/doc
	URL string `json:"url" validate:"required"`

	// Free text description
	// example: Official docs
	Description string `json:"description"`

	// Tags
	// example: ["go","docs"]
	Tags []string `json:"tags"`
}

// UpdateBookmarkRequest is a partial update; nil fields are left untouched.
// swagger:model UpdateBookmarkRequest
type UpdateBookmarkRequest struct {
	Name        *string   `json:"name,omitempty"`
	URL         *string   `json:"url,omitempty"`
	Description *string   `json:"description,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}
