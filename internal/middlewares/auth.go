package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/agnostic-bookmarks/internal/logger"
	"github.com/sbilibin2017/agnostic-bookmarks/internal/models"
	"github.com/sbilibin2017/agnostic-bookmarks/internal/services"
)

// Authenticator resolves Basic credentials to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}

// BasicAuthMiddleware authenticates every request with HTTP Basic credentials
// and stores the resolved user in the request context.
func BasicAuthMiddleware(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			username, password, ok := r.BasicAuth()
			if !ok {
				logger.Log.Infow("authorization failed", "err", "missing basic credentials")
				writeUnauthorized(w)
				return
			}

			user, err := auth.Authenticate(ctx, username, password)
			if err != nil {
				if errors.Is(err, services.ErrInvalidCredentials) {
					logger.Log.Infow("authorization failed", "username", username)
					writeUnauthorized(w)
					return
				}
				logger.Log.Errorw("authentication error", "err", err)
				writeInternalError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(models.AuthErrorResponse{Message: "Invalid username or password"})
}
