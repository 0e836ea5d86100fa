//go:generate mockgen -source=contracts.go -destination=notify_mocks_test.go -package=notify_test

package notify

import (
	"context"

	"blood-donor-connector/internal/domain"
)

// DonorMatcher finds donors for a request.
type DonorMatcher interface {
	CompatibleDonors(ctx context.Context, requested domain.BloodType, location string) ([]domain.Donor, error)
}

// NotificationStore records which donors were told about which request.
type NotificationStore interface {
	Insert(ctx context.Context, n *domain.Notification) (bool, error)
}
