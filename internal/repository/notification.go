package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"blood-donor-connector/internal/apperr"
	"blood-donor-connector/internal/domain"
)

// NotificationRepo stores which donors were told about which request.
type NotificationRepo struct{ db *pgxpool.Pool }

// NewNotificationRepo creates a new NotificationRepo.
func NewNotificationRepo(db *pgxpool.Pool) *NotificationRepo { return &NotificationRepo{db: db} }

// Insert records a notification. It returns false if the pair was already recorded
// and apperr.ErrNotFound if the request or donor row is gone.
func (r *NotificationRepo) Insert(ctx context.Context, n *domain.Notification) (bool, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO donor_notifications (request_id, donor_id)
		VALUES ($1, $2)
		ON CONFLICT (request_id, donor_id) DO NOTHING
		RETURNING created_at`, n.RequestID, n.DonorID).Scan(&n.CreatedAt)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		if IsForeignKeyViolation(err) {
			return false, fmt.Errorf("insert notification request=%d donor=%d: %w", n.RequestID, n.DonorID, apperr.ErrNotFound)
		}
		return false, fmt.Errorf("insert notification request=%d donor=%d: %w", n.RequestID, n.DonorID, err)
	}
	return true, nil
}

// ListByRequest returns notifications recorded for a request ordered by donor id.
func (r *NotificationRepo) ListByRequest(ctx context.Context, requestID int64) ([]domain.Notification, error) {
	rows, err := r.db.Query(ctx, `
		SELECT request_id, donor_id, created_at
		FROM donor_notifications
		WHERE request_id = $1
		ORDER BY donor_id`, requestID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Notification, 0)
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.RequestID, &n.DonorID, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
