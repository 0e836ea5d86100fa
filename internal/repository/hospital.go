package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"blood-donor-connector/internal/domain"
)

// HospitalRepo represents hospital reference data repository.
type HospitalRepo struct{ db *pgxpool.Pool }

// NewHospitalRepo creates a new HospitalRepo.
func NewHospitalRepo(db *pgxpool.Pool) *HospitalRepo { return &HospitalRepo{db: db} }

// List returns all hospitals ordered by id.
func (r *HospitalRepo) List(ctx context.Context) ([]domain.Hospital, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, code, location FROM hospitals ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list hospitals: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Hospital, 0)
	for rows.Next() {
		var h domain.Hospital
		if err := rows.Scan(&h.ID, &h.Name, &h.Code, &h.Location); err != nil {
			return nil, fmt.Errorf("scan hospital: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// Get returns hospital by its ID, or nil if there is none.
func (r *HospitalRepo) Get(ctx context.Context, id int64) (*domain.Hospital, error) {
	return r.one(ctx, `SELECT id, name, code, location FROM hospitals WHERE id = $1`, id)
}

// GetByName returns hospital by its exact name, or nil if there is none.
func (r *HospitalRepo) GetByName(ctx context.Context, name string) (*domain.Hospital, error) {
	return r.one(ctx, `SELECT id, name, code, location FROM hospitals WHERE name = $1`, name)
}

func (r *HospitalRepo) one(ctx context.Context, q string, arg any) (*domain.Hospital, error) {
	var h domain.Hospital
	if err := r.db.QueryRow(ctx, q, arg).Scan(&h.ID, &h.Name, &h.Code, &h.Location); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get hospital %v: %w", arg, err)
	}
	return &h, nil
}

// Count returns the number of hospitals.
func (r *HospitalRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM hospitals`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count hospitals: %w", err)
	}
	return n, nil
}
