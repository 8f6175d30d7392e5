package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/agnostic-bookmarks/internal/logger"
	"github.com/sbilibin2017/agnostic-bookmarks/internal/middlewares"
	"github.com/sbilibin2017/agnostic-bookmarks/internal/models"
	"github.com/sbilibin2017/agnostic-bookmarks/internal/services"
)

// Response bodies shared by the handlers.
const (
	msgInternalError    = "Internal server error"
	msgInvalidBody      = "Invalid request body"
	msgInvalidAuth      = "Invalid username or password"
	msgUsernameTaken    = "Username already exists"
	msgURLTaken         = "A bookmark with this URL already exists"
	msgNotFound         = "Not found"
	msgNotAuthorized    = "Not authorized"
	welcomeMessage      = "Welcome to the coolest API this side of the Mississippi :D"
	contentTypeJSON     = "application/json"
	contentTypePlainTxt = "text/plain; charset=utf-8"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", contentTypePlainTxt)
	w.WriteHeader(status)
	w.Write([]byte(msg))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}

// writeServiceError maps service errors onto responses. Unknown errors are
// logged and answered with a generic 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var fieldErr *services.FieldError
	switch {
	case errors.As(err, &fieldErr):
		writeError(w, http.StatusBadRequest, fieldErr.Message)
	case errors.Is(err, services.ErrUserAlreadyExists):
		writeError(w, http.StatusBadRequest, msgUsernameTaken)
	case errors.Is(err, services.ErrURLAlreadyExists):
		writeError(w, http.StatusBadRequest, msgURLTaken)
	case errors.Is(err, services.ErrBookmarkNotFound):
		writeText(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, services.ErrNotAuthorized):
		writeText(w, http.StatusUnauthorized, msgNotAuthorized)
	case errors.Is(err, services.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, models.AuthErrorResponse{Message: msgInvalidAuth})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
	}
}

// currentUser returns the authenticated user or answers 401.
func currentUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user := middlewares.GetUserFromContext(r.Context())
	if user == nil {
		writeJSON(w, http.StatusUnauthorized, models.AuthErrorResponse{Message: msgInvalidAuth})
		return nil, false
	}
	return user, true
}

// NotFoundHandler answers unmatched API paths.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusNotFound, msgNotFound)
}
