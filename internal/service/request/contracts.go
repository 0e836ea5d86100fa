//go:generate mockgen -source=contracts.go -destination=request_mocks_test.go -package=request_test

package request

import (
	"context"

	"blood-donor-connector/internal/domain"
	"blood-donor-connector/internal/ports/requesttx"
)

type requestRepository interface {
	Create(ctx context.Context, q *domain.Request) error
	Get(ctx context.Context, id int64) (*domain.Request, error)
	List(ctx context.Context, f domain.RequestFilter) ([]domain.Request, error)
	ListPendingByTypes(ctx context.Context, types []domain.BloodType) ([]domain.Request, error)
	WithTx(ctx context.Context, fn func(tx requesttx.Repository) error) error
}

type donorReader interface {
	Get(ctx context.Context, id int64) (*domain.Donor, error)
}

type hospitalReader interface {
	GetByName(ctx context.Context, name string) (*domain.Hospital, error)
}

type donorMatcher interface {
	CompatibleDonors(ctx context.Context, requested domain.BloodType, location string) ([]domain.Donor, error)
}

// Publisher announces stored requests to downstream consumers.
type Publisher interface {
	PublishRequestSubmitted(ctx context.Context, q domain.Request) error
}
