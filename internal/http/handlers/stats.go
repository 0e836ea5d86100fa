package handlers

import (
	"net/http"

	"blood-donor-connector/internal/logx"
)

// StatsHandler serves the dashboard counters.
type StatsHandler struct {
	usecase statsUsecase
	logger  logx.Logger
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(logger logx.Logger, uc statsUsecase) *StatsHandler {
	return &StatsHandler{usecase: uc, logger: logger}
}

// Summary handles GET /stats.
func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.usecase.Summary(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, statsToResponse(s))
}
