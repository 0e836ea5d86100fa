package requesttx

import (
	"context"

	"blood-donor-connector/internal/domain"
)

// Repository is the set of request operations available inside a transaction.
type Repository interface {
	GetForUpdate(ctx context.Context, id int64) (*domain.Request, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus) error
	InsertResponse(ctx context.Context, r *domain.Response) (bool, error)
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
