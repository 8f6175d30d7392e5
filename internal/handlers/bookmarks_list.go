package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/sbilibin2017/agnostic-bookmarks/internal/filters"
	"github.com/sbilibin2017/agnostic-bookmarks/internal/models"
)

// BookmarkLister defines the interface that the service must implement.
type BookmarkLister interface {
	List(ctx context.Context, userID uuid.UUID, f models.BookmarkFilter) ([]models.Bookmark, error)
}

// NewListBookmarksHandler returns an HTTP handler listing the user's bookmarks.
// @Summary List bookmarks
// @Description Returns one page of the user's bookmarks. offset is a page index: offset*pageSize records are skipped.
// @Tags bookmarks
// @Produce json
// @Param sortBy query string false "name or date" Enums(name, date)
// @Param offset query int false "Page index" default(0) minimum(0)
// @Param pageSize query int false "Page size" default(10) minimum(0) maximum(100)
// @Success 200 {array} models.Bookmark
// @Failure 400 {object} models.ValidationErrors "Invalid query parameters"
// @Failure 401 {object} models.AuthErrorResponse "Invalid username or password"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /bookmarks [get]
// @Security BasicAuth
func NewListBookmarksHandler(svc BookmarkLister) http.HandlerFunc {
	return listHandler(svc, filters.ParseList)
}

// NewSearchBookmarksHandler returns an HTTP handler searching the user's bookmarks.
// @Summary Search bookmarks
// @Description Filters the user's bookmarks by a case-insensitive substring of name or description and/or a comma separated tag list (all tags required).
// @Tags bookmarks
// @Produce json
// @Param search query string false "Substring of name or description"
// @Param tag query string false "Comma separated tags, all required"
// @Param sortBy query string false "name or date" Enums(name, date)
// @Param offset query int false "Page index" default(0) minimum(0)
// @Param pageSize query int false "Page size" default(10) minimum(0) maximum(100)
// @Success 200 {array} models.Bookmark
// @Failure 400 {object} models.ValidationErrors "Invalid query parameters"
// @Failure 401 {object} models.AuthErrorResponse "Invalid username or password"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /bookmarks/search [get]
// @Security BasicAuth
func NewSearchBookmarksHandler(svc BookmarkLister) http.HandlerFunc {
	return listHandler(svc, filters.ParseSearch)
}

type filterParser func(q url.Values) (models.BookmarkFilter, *models.ValidationErrors)

func listHandler(svc BookmarkLister, parse filterParser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		f, verrs := parse(r.URL.Query())
		if verrs != nil {
			writeJSON(w, http.StatusBadRequest, verrs)
			return
		}

		bookmarks, err := svc.List(r.Context(), user.UserID, f)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if bookmarks == nil {
			bookmarks = []models.Bookmark{}
		}

		writeJSON(w, http.StatusOK, bookmarks)
	}
}
