package handlers

import (
	"context"

	"blood-donor-connector/internal/domain"
	"blood-donor-connector/internal/service/donor"
	"blood-donor-connector/internal/service/hospital"
	"blood-donor-connector/internal/service/matching"
	"blood-donor-connector/internal/service/request"
	"blood-donor-connector/internal/service/stats"
)

type donorUsecase interface {
	Register(ctx context.Context, d domain.Donor) (domain.Donor, error)
	Get(ctx context.Context, id int64) (domain.Donor, error)
	List(ctx context.Context, f domain.DonorFilter) ([]domain.Donor, error)
	ToggleAvailability(ctx context.Context, id int64) (domain.Donor, error)
	SetAvailability(ctx context.Context, id int64, available bool) (domain.Donor, error)
}

// NewDonorUsecase wires a donor.Service into a donorUsecase.
func NewDonorUsecase(svc *donor.Service) donorUsecase {
	return svc
}

type requestUsecase interface {
	Submit(ctx context.Context, q domain.Request) (domain.SubmitResult, error)
	Get(ctx context.Context, id int64) (domain.Request, error)
	List(ctx context.Context, f domain.RequestFilter) ([]domain.Request, error)
	Fulfill(ctx context.Context, id int64) (domain.Request, error)
	OpenForDonor(ctx context.Context, donorType domain.BloodType) ([]domain.Request, error)
	Respond(ctx context.Context, requestID, donorID int64) (domain.ResponseResult, error)
}

// NewRequestUsecase wires a request.Service into a requestUsecase.
func NewRequestUsecase(svc *request.Service) requestUsecase {
	return svc
}

type matchUsecase interface {
	CompatibleDonors(ctx context.Context, requested domain.BloodType, location string) ([]domain.Donor, error)
}

// NewMatchUsecase wires a matching.Matcher into a matchUsecase.
func NewMatchUsecase(m *matching.Matcher) matchUsecase {
	return m
}

type hospitalUsecase interface {
	List(ctx context.Context) ([]domain.Hospital, error)
	Get(ctx context.Context, id int64) (domain.Hospital, error)
	GetByName(ctx context.Context, name string) (domain.Hospital, error)
}

// NewHospitalUsecase wires a hospital.Service into a hospitalUsecase.
func NewHospitalUsecase(svc *hospital.Service) hospitalUsecase {
	return svc
}

type statsUsecase interface {
	Summary(ctx context.Context) (domain.Stats, error)
}

// NewStatsUsecase wires a stats.Service into a statsUsecase.
func NewStatsUsecase(svc *stats.Service) statsUsecase {
	return svc
}
