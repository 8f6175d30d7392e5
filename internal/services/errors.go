package services

import "errors"

// Error variables
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrBookmarkNotFound   = errors.New("bookmark not found")
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrURLAlreadyExists   = errors.New("a bookmark with this url already exists")
)

// FieldError reports a missing or invalid request field.
// It matches ErrValidation with errors.Is.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func (e *FieldError) Unwrap() error {
	return ErrValidation
}
