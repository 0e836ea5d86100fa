package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blood-donor-connector/internal/apperr"
	"blood-donor-connector/internal/domain"
	"blood-donor-connector/internal/ports/requesttx"
)

const requestColumns = `id, hospital, blood_type, units, urgency, location, status, created_at`

// RequestRepo represents blood request repository.
type RequestRepo struct {
	db *pgxpool.Pool
}

// NewRequestRepo creates a new RequestRepo.
func NewRequestRepo(db *pgxpool.Pool) *RequestRepo {
	return &RequestRepo{db: db}
}

func scanRequest(row rowScanner) (domain.Request, error) {
	var q domain.Request
	err := row.Scan(&q.ID, &q.Hospital, &q.BloodType, &q.Units, &q.Urgency, &q.Location, &q.Status, &q.CreatedAt)
	return q, err
}

// Create inserts a request and fills its ID.
func (r *RequestRepo) Create(ctx context.Context, q *domain.Request) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO requests (hospital, blood_type, units, urgency, location, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		q.Hospital, string(q.BloodType), q.Units, string(q.Urgency), q.Location, string(q.Status), q.CreatedAt,
	).Scan(&q.ID)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return nil
}

// Get returns request by its ID, or nil if there is none.
func (r *RequestRepo) Get(ctx context.Context, id int64) (*domain.Request, error) {
	q, err := scanRequest(r.db.QueryRow(ctx, `SELECT `+requestColumns+` FROM requests WHERE id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get request %d: %w", id, err)
	}
	return &q, nil
}

// List returns requests ordered by id, narrowed by the filter.
func (r *RequestRepo) List(ctx context.Context, f domain.RequestFilter) ([]domain.Request, error) {
	q := `SELECT ` + requestColumns + ` FROM requests`
	args := make([]any, 0, 3)
	if f.Status != nil {
		args = append(args, string(*f.Status))
		q += fmt.Sprintf(" WHERE status = $%d", len(args))
	}
	q += " ORDER BY id"
	if f.Limit != nil {
		args = append(args, *f.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset != nil {
		args = append(args, *f.Offset)
		q += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return r.query(ctx, q, args...)
}

// ListPendingByTypes returns pending requests whose blood type is in types.
func (r *RequestRepo) ListPendingByTypes(ctx context.Context, types []domain.BloodType) ([]domain.Request, error) {
	if len(types) == 0 {
		return []domain.Request{}, nil
	}
	return r.query(ctx, `
		SELECT `+requestColumns+`
		FROM requests
		WHERE status = $1 AND blood_type = ANY($2)
		ORDER BY id`, string(domain.RequestPending), bloodTypesToStrings(types))
}

func (r *RequestRepo) query(ctx context.Context, q string, args ...any) ([]domain.Request, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

// Count returns the number of stored requests.
func (r *RequestRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM requests`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count requests: %w", err)
	}
	return n, nil
}

// WithTx opens a transaction and executes fn within it.
func (r *RequestRepo) WithTx(ctx context.Context, fn func(tx requesttx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(&TxRepo{tx: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// TxRepo runs request statements inside a transaction.
type TxRepo struct {
	tx pgx.Tx
}

// GetForUpdate returns the request locked for the rest of the transaction, or nil if there is none.
func (r *TxRepo) GetForUpdate(ctx context.Context, id int64) (*domain.Request, error) {
	q, err := scanRequest(r.tx.QueryRow(ctx,
		`SELECT `+requestColumns+` FROM requests WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get request %d for update: %w", id, err)
	}
	return &q, nil
}

// UpdateStatus sets the request status.
func (r *TxRepo) UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus) error {
	ct, err := r.tx.Exec(ctx, `
		UPDATE requests
		SET status = $2, updated_at = now()
		WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("update request status %d: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("request %d not found", id)
	}
	return nil
}

// InsertResponse records a donor response. It returns false if the pair was already recorded.
func (r *TxRepo) InsertResponse(ctx context.Context, resp *domain.Response) (bool, error) {
	err := r.tx.QueryRow(ctx, `
		INSERT INTO request_responses (request_id, donor_id)
		VALUES ($1, $2)
		ON CONFLICT (request_id, donor_id) DO NOTHING
		RETURNING created_at`, resp.RequestID, resp.DonorID).Scan(&resp.CreatedAt)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		if IsForeignKeyViolation(err) {
			return false, fmt.Errorf("insert response request=%d donor=%d: %w", resp.RequestID, resp.DonorID, apperr.ErrNotFound)
		}
		return false, fmt.Errorf("insert response request=%d donor=%d: %w", resp.RequestID, resp.DonorID, err)
	}
	return true, nil
}
