package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// TagLister defines the interface that the service must implement.
type TagLister interface {
	Tags(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// NewTagsHandler returns an HTTP handler listing the user's distinct tags.
// @Summary List tags
// @Tags bookmarks
// @Produce json
// @Success 200 {array} string
// @Failure 401 {object} models.AuthErrorResponse "Invalid username or password"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /tags [get]
// @Security BasicAuth
func NewTagsHandler(svc TagLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		tags, err := svc.Tags(r.Context(), user.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if tags == nil {
			tags = []string{}
		}

		writeJSON(w, http.StatusOK, tags)
	}
}
