package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/itchan-dev/bbs/internal/handler"
	mw "github.com/itchan-dev/bbs/internal/middleware"
	"github.com/itchan-dev/bbs/internal/setup"
)

// New creates the chi router with all routes.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(mw.RequestID)
	r.Use(mw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(mw.Metrics)
	r.Use(mw.SecurityHeaders(deps.Config.Public.SecureCookies, mw.DefaultCSP))

	h := deps.Handler

	r.NotFound(h.NotFound)

	// HTML pages
	r.Get("/", h.IndexGetHandler)
	r.Get("/new", h.NewThreadGetHandler)
	r.Post("/new", h.NewThreadPostHandler)
	r.Get("/thread/{id}", h.ThreadGetHandler)
	r.Post("/thread/{id}", h.ThreadPostHandler)

	// Read-only JSON API, open to configured origins
	r.Route("/api/v1", func(api chi.Router) {
		api.Use(cors.Handler(cors.Options{
			AllowedOrigins: deps.Config.Public.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		api.Get("/threads", h.ListThreadsJSON)
		api.Get("/threads/{id}", h.GetThreadJSON)
	})

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	static, err := fs.Sub(handler.StaticFS, "static")
	if err != nil {
		panic(err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	return r
}
