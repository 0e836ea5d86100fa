package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"

	"blood-donor-connector/internal/domain"
)

type stubDonorUC struct {
	registerFn func(ctx context.Context, d domain.Donor) (domain.Donor, error)
	getFn      func(ctx context.Context, id int64) (domain.Donor, error)
	listFn     func(ctx context.Context, f domain.DonorFilter) ([]domain.Donor, error)
	toggleFn   func(ctx context.Context, id int64) (domain.Donor, error)
	setFn      func(ctx context.Context, id int64, available bool) (domain.Donor, error)
}

func (s *stubDonorUC) Register(ctx context.Context, d domain.Donor) (domain.Donor, error) {
	return s.registerFn(ctx, d)
}

func (s *stubDonorUC) Get(ctx context.Context, id int64) (domain.Donor, error) {
	return s.getFn(ctx, id)
}

func (s *stubDonorUC) List(ctx context.Context, f domain.DonorFilter) ([]domain.Donor, error) {
	return s.listFn(ctx, f)
}

func (s *stubDonorUC) ToggleAvailability(ctx context.Context, id int64) (domain.Donor, error) {
	return s.toggleFn(ctx, id)
}

func (s *stubDonorUC) SetAvailability(ctx context.Context, id int64, available bool) (domain.Donor, error) {
	return s.setFn(ctx, id, available)
}

type stubRequestUC struct {
	submitFn  func(ctx context.Context, q domain.Request) (domain.SubmitResult, error)
	getFn     func(ctx context.Context, id int64) (domain.Request, error)
	listFn    func(ctx context.Context, f domain.RequestFilter) ([]domain.Request, error)
	fulfillFn func(ctx context.Context, id int64) (domain.Request, error)
	openFn    func(ctx context.Context, t domain.BloodType) ([]domain.Request, error)
	respondFn func(ctx context.Context, requestID, donorID int64) (domain.ResponseResult, error)
}

func (s *stubRequestUC) Submit(ctx context.Context, q domain.Request) (domain.SubmitResult, error) {
	return s.submitFn(ctx, q)
}

func (s *stubRequestUC) Get(ctx context.Context, id int64) (domain.Request, error) {
	return s.getFn(ctx, id)
}

func (s *stubRequestUC) List(ctx context.Context, f domain.RequestFilter) ([]domain.Request, error) {
	return s.listFn(ctx, f)
}

func (s *stubRequestUC) Fulfill(ctx context.Context, id int64) (domain.Request, error) {
	return s.fulfillFn(ctx, id)
}

func (s *stubRequestUC) OpenForDonor(ctx context.Context, t domain.BloodType) ([]domain.Request, error) {
	return s.openFn(ctx, t)
}

func (s *stubRequestUC) Respond(ctx context.Context, requestID, donorID int64) (domain.ResponseResult, error) {
	return s.respondFn(ctx, requestID, donorID)
}

type stubMatchUC struct {
	fn func(ctx context.Context, t domain.BloodType, location string) ([]domain.Donor, error)
}

func (s *stubMatchUC) CompatibleDonors(ctx context.Context, t domain.BloodType, location string) ([]domain.Donor, error) {
	return s.fn(ctx, t, location)
}

type stubHospitalUC struct {
	listFn   func(ctx context.Context) ([]domain.Hospital, error)
	getFn    func(ctx context.Context, id int64) (domain.Hospital, error)
	byNameFn func(ctx context.Context, name string) (domain.Hospital, error)
}

func (s *stubHospitalUC) List(ctx context.Context) ([]domain.Hospital, error) { return s.listFn(ctx) }

func (s *stubHospitalUC) Get(ctx context.Context, id int64) (domain.Hospital, error) {
	return s.getFn(ctx, id)
}

func (s *stubHospitalUC) GetByName(ctx context.Context, name string) (domain.Hospital, error) {
	return s.byNameFn(ctx, name)
}

type stubStatsUC struct {
	fn func(ctx context.Context) (domain.Stats, error)
}

func (s *stubStatsUC) Summary(ctx context.Context) (domain.Stats, error) { return s.fn(ctx) }

// serve routes a single request through a chi router so URL params resolve.
func serve(method, pattern, target, body string, h http.HandlerFunc) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.MethodFunc(method, pattern, h)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}
