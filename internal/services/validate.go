package services

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

const msgPasswordTooLong = "Password must be at most 72 bytes"

var requiredMessages = map[string]string{
	"Username": "Username is required",
	"Password": "Password is required",
	"URL":      "URL is required",
	"Name":     "Name is required",
}

// validateRequest checks the validate tags of req and reports a single
// FieldError, choosing the first failing field listed in priority.
func validateRequest(req any, priority ...string) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	failed := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		failed[fe.StructField()] = true
	}

	field := verrs[0].StructField()
	for _, p := range priority {
		if failed[p] {
			field = p
			break
		}
	}
	return fieldError(field)
}

func fieldError(field string) *FieldError {
	msg, ok := requiredMessages[field]
	if !ok {
		msg = field + " is invalid"
	}
	return &FieldError{Field: strings.ToLower(field), Message: msg}
}
