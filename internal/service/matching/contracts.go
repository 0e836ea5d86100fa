//go:generate mockgen -source=contracts.go -destination=matching_mocks_test.go -package=matching_test

package matching

import (
	"context"

	"blood-donor-connector/internal/domain"
)

// donorSource returns available donors whose type is in the given set.
type donorSource interface {
	ListAvailableByTypes(ctx context.Context, types []domain.BloodType) ([]domain.Donor, error)
}
