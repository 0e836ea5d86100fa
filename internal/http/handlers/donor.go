package handlers

import (
	"net/http"

	"blood-donor-connector/internal/domain"
	"blood-donor-connector/internal/logx"
)

// DonorHandler handles HTTP requests for donor resources.
type DonorHandler struct {
	usecase  donorUsecase
	requests requestUsecase
	logger   logx.Logger
}

// NewDonorHandler creates a new DonorHandler.
func NewDonorHandler(logger logx.Logger, uc donorUsecase, requests requestUsecase) *DonorHandler {
	return &DonorHandler{usecase: uc, requests: requests, logger: logger}
}

// Register handles POST /donors.
// @Summary Register a donor
// @Tags donors
// @Accept json
// @Produce json
// @Param request body registerDonorRequest true "Donor payload"
// @Success 201 {object} donorDTO
// @Failure 400 {object} ErrorResponse "invalid input"
// @Failure 500 {object} ErrorResponse "internal error"
// @Router /donors [post]
func (h *DonorHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerDonorRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	in, err := req.toModel()
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}

	d, err := h.usecase.Register(r.Context(), in)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, donorToResponse(d))
}

// List handles GET /donors?blood_type=&available=&limit=&offset=.
func (h *DonorHandler) List(w http.ResponseWriter, r *http.Request) {
	var f domain.DonorFilter

	if s := queryBloodType(r, "blood_type"); s != "" {
		bt := domain.BloodType(s)
		f.BloodType = &bt
	}
	switch r.URL.Query().Get("available") {
	case "":
	case "true", "1":
		v := true
		f.Available = &v
	case "false", "0":
		v := false
		f.Available = &v
	default:
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid available")
		return
	}

	var err error
	if f.Limit, err = queryInt(r, "limit"); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	if f.Offset, err = queryInt(r, "offset"); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}

	list, err := h.usecase.List(r.Context(), f)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, donorsToResponse(list))
}

// Get handles GET /donors/{id}.
func (h *DonorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	d, err := h.usecase.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, donorToResponse(d))
}

// ToggleAvailability handles POST /donors/{id}/availability/toggle.
func (h *DonorHandler) ToggleAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	d, err := h.usecase.ToggleAvailability(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, donorToResponse(d))
}

// SetAvailability handles PATCH /donors/{id}/availability.
func (h *DonorHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req setAvailabilityRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if req.Available == nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "available is required")
		return
	}

	d, err := h.usecase.SetAvailability(r.Context(), id, *req.Available)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, donorToResponse(d))
}

// OpenRequests handles GET /donors/{id}/open-requests: pending requests the
// donor's blood type can serve.
func (h *DonorHandler) OpenRequests(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	d, err := h.usecase.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	list, err := h.requests.OpenForDonor(r.Context(), d.BloodType)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, requestsToResponse(list))
}
