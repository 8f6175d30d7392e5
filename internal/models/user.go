package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
// The password hash never leaves the server.
type User struct {
	UserID       uuid.UUID `json:"_id" db:"id"`                // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
