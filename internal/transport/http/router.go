// Package httptransport is the thin HTTP layer. It decodes requests,
// delegates to domain services, and renders the JSON envelopes; business
// logic stays in the service packages.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"taskdeck/internal/platform/metrics"
	"taskdeck/internal/platform/middleware"
)

// NewRouter wires all public endpoints. Everything under the authenticated
// group rejects requests without a valid Bearer token before any persistence
// access.
func NewRouter(h *Handler, tokens middleware.TokenValidator, logger *slog.Logger, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Device)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Latency(m))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Post("/register", h.handleRegister)
	r.Post("/auth/login", h.handleLogin)
	r.Post("/auth/federated", h.handleFederatedLogin)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(tokens, logger))

		r.Get("/projects", h.handleListProjects)
		r.Post("/projects", h.handleCreateProject)

		r.Get("/categories", h.handleListCategories)
		r.Post("/categories", h.handleCreateCategory)

		r.Get("/tasks", h.handleListTasks)
		r.Post("/tasks", h.handleCreateTask)
		r.Patch("/tasks/{id}", h.handleUpdateTask)
	})

	return r
}
