package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blood-donor-connector/internal/apperr"
	"blood-donor-connector/internal/domain"
)

var created = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func sampleDonor() domain.Donor {
	last := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	return domain.Donor{
		ID:           7,
		Name:         "John Smith",
		BloodType:    domain.BloodTypeOPos,
		Phone:        "555-1234",
		Location:     "City Center",
		LastDonation: &last,
		Available:    true,
		CreatedAt:    created,
	}
}

const sampleDonorJSON = `{
	"id": 7,
	"name": "John Smith",
	"blood_type": "O+",
	"phone": "555-1234",
	"location": "City Center",
	"last_donation": "2024-01-15",
	"available": true,
	"created_at": "2024-03-01T10:00:00Z"
}`

func TestDonorHandler_Register(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		fn       func(ctx context.Context, d domain.Donor) (domain.Donor, error)
		wantCode int
		wantBody string
	}{
		{
			name: "created",
			body: `{"name":"John Smith","blood_type":"O+","phone":"555-1234","location":"City Center","last_donation":"2024-01-15"}`,
			fn: func(_ context.Context, d domain.Donor) (domain.Donor, error) {
				if d.LastDonation == nil || d.LastDonation.Format(dateLayout) != "2024-01-15" {
					return domain.Donor{}, fmt.Errorf("unexpected last donation %v", d.LastDonation)
				}
				return sampleDonor(), nil
			},
			wantCode: http.StatusCreated,
			wantBody: sampleDonorJSON,
		},
		{
			name:     "bad date",
			body:     `{"name":"A","blood_type":"O+","phone":"555-1234","location":"X","last_donation":"15/01/2024"}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"invalid last_donation"}`,
		},
		{
			name:     "unknown field",
			body:     `{"name":"A","age":30}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"invalid json"}`,
		},
		{
			name: "unsupported type",
			body: `{"name":"A","blood_type":"C+","phone":"555-1234","location":"X"}`,
			fn: func(context.Context, domain.Donor) (domain.Donor, error) {
				return domain.Donor{}, fmt.Errorf("register: %w", apperr.ErrUnsupportedBloodType)
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"unsupported blood type"}`,
		},
		{
			name: "invalid phone",
			body: `{"name":"A","blood_type":"O+","phone":"abc","location":"X"}`,
			fn: func(context.Context, domain.Donor) (domain.Donor, error) {
				return domain.Donor{}, fmt.Errorf("phone: %w", apperr.ErrInvalid)
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"invalid input"}`,
		},
		{
			name: "internal",
			body: `{"name":"A","blood_type":"O+","phone":"555-1234","location":"X"}`,
			fn: func(context.Context, domain.Donor) (domain.Donor, error) {
				return domain.Donor{}, fmt.Errorf("db down")
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewDonorHandler(nil, &stubDonorUC{registerFn: tt.fn}, nil)
			rr := serve(http.MethodPost, "/donors", "/donors", tt.body, h.Register)

			require.Equal(t, tt.wantCode, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestDonorHandler_List_ParsesFilter(t *testing.T) {
	t.Parallel()

	var got domain.DonorFilter
	uc := &stubDonorUC{listFn: func(_ context.Context, f domain.DonorFilter) ([]domain.Donor, error) {
		got = f
		return []domain.Donor{sampleDonor()}, nil
	}}
	h := NewDonorHandler(nil, uc, nil)

	rr := serve(http.MethodGet, "/donors", "/donors?blood_type=AB%2B&available=true&limit=10&offset=5", "", h.List)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "["+sampleDonorJSON+"]", rr.Body.String())
	require.NotNil(t, got.BloodType)
	assert.Equal(t, domain.BloodTypeABPos, *got.BloodType)
	require.NotNil(t, got.Available)
	assert.True(t, *got.Available)
	require.NotNil(t, got.Limit)
	assert.Equal(t, 10, *got.Limit)
	require.NotNil(t, got.Offset)
	assert.Equal(t, 5, *got.Offset)
}

func TestDonorHandler_List_UnencodedPlus(t *testing.T) {
	t.Parallel()

	var got domain.DonorFilter
	uc := &stubDonorUC{listFn: func(_ context.Context, f domain.DonorFilter) ([]domain.Donor, error) {
		got = f
		return nil, nil
	}}
	h := NewDonorHandler(nil, uc, nil)

	rr := serve(http.MethodGet, "/donors", "/donors?blood_type=O+", "", h.List)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
	require.NotNil(t, got.BloodType)
	assert.Equal(t, domain.BloodType("O+"), *got.BloodType)
	assert.Nil(t, got.Available)
}

func TestDonorHandler_List_BadQuery(t *testing.T) {
	t.Parallel()

	h := NewDonorHandler(nil, &stubDonorUC{}, nil)

	for _, target := range []string{
		"/donors?available=maybe",
		"/donors?limit=-1",
		"/donors?offset=abc",
	} {
		rr := serve(http.MethodGet, "/donors", target, "", h.List)
		assert.Equal(t, http.StatusBadRequest, rr.Code, target)
	}
}

func TestDonorHandler_Get(t *testing.T) {
	t.Parallel()

	uc := &stubDonorUC{getFn: func(_ context.Context, id int64) (domain.Donor, error) {
		if id == 7 {
			return sampleDonor(), nil
		}
		return domain.Donor{}, apperr.ErrNotFound
	}}
	h := NewDonorHandler(nil, uc, nil)

	rr := serve(http.MethodGet, "/donors/{id}", "/donors/7", "", h.Get)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, sampleDonorJSON, rr.Body.String())

	rr = serve(http.MethodGet, "/donors/{id}", "/donors/8", "", h.Get)
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rr.Body.String())

	rr = serve(http.MethodGet, "/donors/{id}", "/donors/x", "", h.Get)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"invalid id"}`, rr.Body.String())
}

func TestDonorHandler_ToggleAvailability(t *testing.T) {
	t.Parallel()

	uc := &stubDonorUC{toggleFn: func(_ context.Context, id int64) (domain.Donor, error) {
		d := sampleDonor()
		d.ID = id
		d.Available = false
		d.LastDonation = nil
		return d, nil
	}}
	h := NewDonorHandler(nil, uc, nil)

	rr := serve(http.MethodPost, "/donors/{id}/availability/toggle", "/donors/3/availability/toggle", "", h.ToggleAvailability)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"id": 3,
		"name": "John Smith",
		"blood_type": "O+",
		"phone": "555-1234",
		"location": "City Center",
		"available": false,
		"created_at": "2024-03-01T10:00:00Z"
	}`, rr.Body.String())
}

func TestDonorHandler_SetAvailability(t *testing.T) {
	t.Parallel()

	var gotAvailable bool
	uc := &stubDonorUC{setFn: func(_ context.Context, _ int64, available bool) (domain.Donor, error) {
		gotAvailable = available
		d := sampleDonor()
		d.Available = available
		return d, nil
	}}
	h := NewDonorHandler(nil, uc, nil)

	rr := serve(http.MethodPatch, "/donors/{id}/availability", "/donors/7/availability", `{"available":false}`, h.SetAvailability)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, gotAvailable)

	rr = serve(http.MethodPatch, "/donors/{id}/availability", "/donors/7/availability", `{}`, h.SetAvailability)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"available is required"}`, rr.Body.String())
}

func TestDonorHandler_OpenRequests(t *testing.T) {
	t.Parallel()

	var askedFor domain.BloodType
	donors := &stubDonorUC{getFn: func(_ context.Context, id int64) (domain.Donor, error) {
		if id != 7 {
			return domain.Donor{}, apperr.ErrNotFound
		}
		d := sampleDonor()
		d.BloodType = domain.BloodTypeONeg
		return d, nil
	}}
	requests := &stubRequestUC{openFn: func(_ context.Context, bt domain.BloodType) ([]domain.Request, error) {
		askedFor = bt
		return []domain.Request{sampleRequest()}, nil
	}}
	h := NewDonorHandler(nil, donors, requests)

	rr := serve(http.MethodGet, "/donors/{id}/open-requests", "/donors/7/open-requests", "", h.OpenRequests)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "["+sampleRequestJSON+"]", rr.Body.String())
	assert.Equal(t, domain.BloodTypeONeg, askedFor)

	rr = serve(http.MethodGet, "/donors/{id}/open-requests", "/donors/9/open-requests", "", h.OpenRequests)
	require.Equal(t, http.StatusNotFound, rr.Code)
}
