package handlers

import (
	"context"
	"net/http"
	"time"

	"blood-donor-connector/internal/logx"
)

// Pinger checks that a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers holds the service-level HTTP handlers (health, readiness, 404).
type Handlers struct {
	Logger logx.Logger
	db     Pinger
}

// New creates a Handlers instance.
func New(logger logx.Logger, db Pinger) *Handlers {
	return &Handlers{Logger: logger, db: db}
}

// Ping handles GET /ping and returns 200 with {"message":"pong"}.
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, map[string]string{"message": "pong"})
}

// HealthcheckHead handles HEAD /healthcheck and returns 204 No Content.
func (h *Handlers) HealthcheckHead(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// Readyz handles GET /readyz: 200 when the database answers, 503 otherwise.
func (h *Handlers) Readyz(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			writeError(h.Logger, w, r, http.StatusServiceUnavailable, "database unavailable")
			return
		}
	}
	writeJSON(h.Logger, w, r, http.StatusOK, map[string]string{"status": "ready"})
}

// NotFound returns a JSON 404 error for unknown routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(h.Logger, w, r, http.StatusNotFound, "route not found")
}

// MethodNotAllowed returns a JSON 405 error.
func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(h.Logger, w, r, http.StatusMethodNotAllowed, "method not allowed")
}
