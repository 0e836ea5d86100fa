//go:generate mockgen -source=contracts.go -destination=donor_mocks_test.go -package=donor_test

package donor

import (
	"context"

	"blood-donor-connector/internal/domain"
)

// donorRepository defines storage operations required by the business layer.
type donorRepository interface {
	Create(ctx context.Context, d *domain.Donor) error
	Get(ctx context.Context, id int64) (*domain.Donor, error)
	List(ctx context.Context, f domain.DonorFilter) ([]domain.Donor, error)
	ToggleAvailability(ctx context.Context, id int64) (*domain.Donor, error)
	SetAvailability(ctx context.Context, id int64, available bool) (*domain.Donor, error)
}
