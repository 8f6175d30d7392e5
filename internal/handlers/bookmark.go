package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/agnostic-bookmarks/internal/models"
)

// BookmarkGetter defines the interface that the service must implement.
type BookmarkGetter interface {
	Get(ctx context.Context, userID uuid.UUID, id string) (*models.Bookmark, error)
}

// BookmarkCreator defines the interface that the service must implement.
type BookmarkCreator interface {
	Create(ctx context.Context, userID uuid.UUID, req models.CreateBookmarkRequest) (*models.Bookmark, error)
}

// BookmarkUpdater defines the interface that the service must implement.
type BookmarkUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, id string, req models.UpdateBookmarkRequest) (*models.Bookmark, error)
}

// BookmarkDeleter defines the interface that the service must implement.
type BookmarkDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID, id string) (*models.Bookmark, error)
}

// NewGetBookmarkHandler returns an HTTP handler for reading one bookmark.
// @Summary Get bookmark
// @Tags bookmarks
// @Produce json
// @Param id path string true "Bookmark id"
// @Success 200 {object} models.Bookmark
// @Failure 401 {string} string "Not authorized"
// @Failure 404 {string} string "Not found"
// @Router /bookmarks/{id} [get]
// @Security BasicAuth
func NewGetBookmarkHandler(svc BookmarkGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		b, err := svc.Get(r.Context(), user.UserID, chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, b)
	}
}

// NewCreateBookmarkHandler returns an HTTP handler for bookmark creation.
// @Summary Create bookmark
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param bookmark body models.CreateBookmarkRequest true "New bookmark"
// @Success 200 {object} models.Bookmark
// @Failure 400 {object} models.ErrorResponse "Missing url or name / duplicate url"
// @Failure 401 {object} models.AuthErrorResponse "Invalid username or password"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /bookmarks [post]
// @Security BasicAuth
func NewCreateBookmarkHandler(svc BookmarkCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req models.CreateBookmarkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		b, err := svc.Create(r.Context(), user.UserID, req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, b)
	}
}

// NewUpdateBookmarkHandler returns an HTTP handler for partial bookmark updates.
// @Summary Update bookmark
// @Description Updates only the supplied fields. Owner and id never change.
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param id path string true "Bookmark id"
// @Param bookmark body models.UpdateBookmarkRequest true "Fields to change"
// @Success 200 {object} models.Bookmark
// @Failure 400 {object} models.ErrorResponse "Invalid field / duplicate url"
// @Failure 401 {string} string "Not authorized"
// @Failure 404 {string} string "Not found"
// @Router /bookmarks/{id} [patch]
// @Security BasicAuth
func NewUpdateBookmarkHandler(svc BookmarkUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req models.UpdateBookmarkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		b, err := svc.Update(r.Context(), user.UserID, chi.URLParam(r, "id"), req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, b)
	}
}

// NewDeleteBookmarkHandler returns an HTTP handler for bookmark deletion.
// @Summary Delete bookmark
// @Description Deletes the bookmark and returns it.
// @Tags bookmarks
// @Produce json
// @Param id path string true "Bookmark id"
// @Success 200 {object} models.Bookmark
// @Failure 401 {string} string "Not authorized"
// @Failure 404 {string} string "Not found"
// @Router /bookmarks/{id} [delete]
// @Security BasicAuth
func NewDeleteBookmarkHandler(svc BookmarkDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		b, err := svc.Delete(r.Context(), user.UserID, chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, b)
	}
}
