package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ruralcrm/taskboard/backend/internal/handler"
	"github.com/ruralcrm/taskboard/shared/config"
	mw "github.com/ruralcrm/taskboard/shared/middleware"
	"github.com/ruralcrm/taskboard/shared/middleware/metrics"
)

// New assembles the chi router with all routes and middleware.
func New(h *handler.Handler, auth *mw.Auth, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Public.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Probes and metrics stay outside tenant auth
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(auth.RequireTenant())

		r.Route("/boards", func(r chi.Router) {
			r.Get("/", h.GetBoards)
			r.Post("/", h.CreateBoard)
			r.Get("/{boardID}", h.GetBoard)
			r.Put("/{boardID}", h.UpdateBoard)
			r.Delete("/{boardID}", h.DeleteBoard)
		})

		r.Route("/columns", func(r chi.Router) {
			r.Get("/", h.GetColumns)
			r.Post("/", h.CreateColumn)
			r.Get("/{columnID}", h.GetColumn)
			r.Put("/{columnID}", h.UpdateColumn)
			r.Delete("/{columnID}", h.DeleteColumn)
		})

		r.Route("/cards", func(r chi.Router) {
			r.Get("/", h.GetCards)
			r.Post("/", h.CreateCard)
			r.Get("/{cardID}", h.GetCard)
			r.Put("/{cardID}", h.UpdateCard)
			r.Delete("/{cardID}", h.DeleteCard)
			r.Post("/{cardID}/move", h.MoveCard)
		})

		r.Get("/reports", h.GetReport)
	})

	return r
}
