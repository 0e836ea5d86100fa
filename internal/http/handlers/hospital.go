package handlers

import (
	"net/http"

	"blood-donor-connector/internal/logx"
)

// HospitalHandler serves the hospital reference data.
type HospitalHandler struct {
	usecase hospitalUsecase
	logger  logx.Logger
}

// NewHospitalHandler creates a new HospitalHandler.
func NewHospitalHandler(logger logx.Logger, uc hospitalUsecase) *HospitalHandler {
	return &HospitalHandler{usecase: uc, logger: logger}
}

// List handles GET /hospitals.
func (h *HospitalHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.usecase.List(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, hospitalsToResponse(list))
}

// Get handles GET /hospitals/{id}.
func (h *HospitalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	hs, err := h.usecase.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, hospitalToResponse(hs))
}

// Lookup handles GET /hospitals/lookup?name=.
func (h *HospitalHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	hs, err := h.usecase.GetByName(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, hospitalToResponse(hs))
}
