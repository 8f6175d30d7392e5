package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/agnostic-bookmarks/internal/middlewares"
	"github.com/sbilibin2017/agnostic-bookmarks/internal/models"
)

var testUser = &models.User{UserID: uuid.MustParse("6f1c1f3e-2d52-4f7a-9a51-6a8d7e0c9b11"), Username: "alice"}

// newAuthedRequest builds a request carrying testUser and optional chi url params.
func newAuthedRequest(method, target string, body io.Reader, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := middlewares.WithUser(req.Context(), testUser)
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}
