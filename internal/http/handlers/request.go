package handlers

import (
	"net/http"
	"strings"

	"blood-donor-connector/internal/domain"
	"blood-donor-connector/internal/logx"
)

// RequestHandler handles HTTP requests for blood request resources.
type RequestHandler struct {
	usecase requestUsecase
	logger  logx.Logger
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(logger logx.Logger, uc requestUsecase) *RequestHandler {
	return &RequestHandler{usecase: uc, logger: logger}
}

// Submit handles POST /requests.
// @Summary Submit a blood request
// @Tags requests
// @Accept json
// @Produce json
// @Param request body submitRequestRequest true "Request payload"
// @Success 201 {object} submitRequestResponse
// @Failure 400 {object} ErrorResponse "invalid input"
// @Failure 500 {object} ErrorResponse "internal error"
// @Router /requests [post]
func (h *RequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequestRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	res, err := h.usecase.Submit(r.Context(), req.toModel())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, submitRequestResponse{
		Request:        requestToResponse(res.Request),
		MatchingDonors: res.MatchingDonors,
	})
}

// List handles GET /requests?status=&limit=&offset=.
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	var f domain.RequestFilter
	if s := strings.TrimSpace(r.URL.Query().Get("status")); s != "" {
		st := domain.RequestStatus(s)
		f.Status = &st
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
	writeJSON(h.logger, w, r, http.StatusOK, requestsToResponse(list))
}

// Get handles GET /requests/{id}.
func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	q, err := h.usecase.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, requestToResponse(q))
}

// Fulfill handles POST /requests/{id}/fulfill.
// @Summary Mark a request as fulfilled
// @Tags requests
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} requestDTO
// @Failure 404 {object} ErrorResponse "not found"
// @Router /requests/{id}/fulfill [post]
func (h *RequestHandler) Fulfill(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	q, err := h.usecase.Fulfill(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, requestToResponse(q))
}

// Respond handles POST /requests/{id}/responses.
func (h *RequestHandler) Respond(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req respondRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if req.DonorID <= 0 {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid donor_id")
		return
	}

	res, err := h.usecase.Respond(r.Context(), id, req.DonorID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, respondResultToResponse(res))
}
