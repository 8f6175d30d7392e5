package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/agnostic-bookmarks/internal/filters"
	"github.com/sbilibin2017/agnostic-bookmarks/internal/models"
)

// BookmarkFinder defines the interface that the service must implement.
type BookmarkFinder interface {
	FindByURL(ctx context.Context, userID uuid.UUID, url string) (*models.Bookmark, error)
}

// NewFindBookmarkHandler returns an HTTP handler looking up a bookmark by exact url.
// @Summary Find bookmark by url
// @Tags bookmarks
// @Produce json
// @Param url query string true "Exact bookmark url"
// @Success 200 {object} models.Bookmark
// @Failure 400 {object} models.ValidationErrors "Missing url"
// @Failure 401 {object} models.AuthErrorResponse "Invalid username or password"
// @Failure 404 {string} string "Not found"
// @Router /bookmarks/bookmark [get]
// @Security BasicAuth
func NewFindBookmarkHandler(svc BookmarkFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		url, verrs := filters.ParseFind(r.URL.Query())
		if verrs != nil {
			writeJSON(w, http.StatusBadRequest, verrs)
			return
		}

		b, err := svc.FindByURL(r.Context(), user.UserID, url)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, b)
	}
}
