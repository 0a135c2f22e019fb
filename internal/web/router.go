package web

import (
	"net/http"

	_ "minigrep/docs"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

func RegisterRoutes(r chi.Router, h *SearchHandler, metrics http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(RequestIDMiddleware)
		r.Use(LoggerMiddleware(h.logger))
		r.Get("/search", h.Search)
	})
	r.Get("/healthz", h.Health)
	r.Method(http.MethodGet, "/metrics", metrics)
	r.Get("/swagger/*", httpSwagger.WrapHandler)
}
