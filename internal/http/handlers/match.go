package handlers

import (
	"net/http"
	"strings"

	"blood-donor-connector/internal/domain"
	"blood-donor-connector/internal/logx"
)

// MatchHandler exposes the compatibility matcher.
type MatchHandler struct {
	usecase matchUsecase
	logger  logx.Logger
}

// NewMatchHandler creates a new MatchHandler.
func NewMatchHandler(logger logx.Logger, uc matchUsecase) *MatchHandler {
	return &MatchHandler{usecase: uc, logger: logger}
}

// Compatible handles GET /matches?blood_type=&location=.
// An unrecognized blood type yields an empty list, not an error.
func (h *MatchHandler) Compatible(w http.ResponseWriter, r *http.Request) {
	raw := queryBloodType(r, "blood_type")
	if raw == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "blood_type is required")
		return
	}
	location := strings.TrimSpace(r.URL.Query().Get("location"))

	bt, _ := domain.ParseBloodType(raw)

	list, err := h.usecase.CompatibleDonors(r.Context(), bt, location)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, matchResponse{
		BloodType: string(bt),
		Location:  location,
		Count:     len(list),
		Donors:    donorsToResponse(list),
	})
}
