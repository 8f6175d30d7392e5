package server

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/sbilibin2017/agnostic-bookmarks/docs"
	"github.com/sbilibin2017/agnostic-bookmarks/internal/handlers"
	"github.com/sbilibin2017/agnostic-bookmarks/internal/middlewares"
	"github.com/sbilibin2017/agnostic-bookmarks/internal/web"
)

// AuthService registers and authenticates users.
type AuthService interface {
	handlers.Registerer
	middlewares.Authenticator
}

// BookmarkService serves every bookmark endpoint.
type BookmarkService interface {
	handlers.BookmarkLister
	handlers.BookmarkFinder
	handlers.BookmarkGetter
	handlers.BookmarkCreator
	handlers.BookmarkUpdater
	handlers.BookmarkDeleter
	handlers.TagLister
}

// Deps holds everything the router needs.
type Deps struct {
	DB        *sqlx.DB
	Auth      AuthService
	Bookmarks BookmarkService
	Static    fs.FS
	Log       *zap.SugaredLogger
}

// NewRouter builds the HTTP handler: operational endpoints, the /api subrouter
// and the frontend fallback for everything else.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(d.Log))

	r.Get("/healthz", handlers.NewHealthHandler())
	r.Get("/readyz", handlers.NewReadyHandler(d.DB))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(r chi.Router) {
		r.Use(middlewares.AllowAnyOrigin)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Origin", "X-Requested-With", "Content-Type", "Accept", "Authorization"},
		}))

		r.Get("/", handlers.NewWelcomeHandler())
		r.Post("/users", handlers.NewRegisterHandler(d.Auth))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.BasicAuthMiddleware(d.Auth))

			r.Get("/auth", handlers.NewAuthHandler())
			r.Get("/tags", handlers.NewTagsHandler(d.Bookmarks))

			r.Route("/bookmarks", func(r chi.Router) {
				r.Get("/", handlers.NewListBookmarksHandler(d.Bookmarks))
				r.Post("/", handlers.NewCreateBookmarkHandler(d.Bookmarks))
				r.Get("/search", handlers.NewSearchBookmarksHandler(d.Bookmarks))
				r.Get("/bookmark", handlers.NewFindBookmarkHandler(d.Bookmarks))

				r.Get("/{id}", handlers.NewGetBookmarkHandler(d.Bookmarks))
				r.With(middlewares.TxMiddleware(d.DB)).Patch("/{id}", handlers.NewUpdateBookmarkHandler(d.Bookmarks))
				r.With(middlewares.TxMiddleware(d.DB)).Delete("/{id}", handlers.NewDeleteBookmarkHandler(d.Bookmarks))
			})
		})

		r.NotFound(handlers.NotFoundHandler)
	})

	r.NotFound(web.Handler(d.Static).ServeHTTP)

	return r
}
