package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"blood-donor-connector/internal/domain"
)

const donorColumns = `id, name, blood_type, phone, location, last_donation, available, created_at`

// DonorRepo represents donor repository.
type DonorRepo struct{ db *pgxpool.Pool }

// NewDonorRepo creates a new DonorRepo.
func NewDonorRepo(db *pgxpool.Pool) *DonorRepo { return &DonorRepo{db: db} }

func scanDonor(row rowScanner) (domain.Donor, error) {
	var d domain.Donor
	err := row.Scan(&d.ID, &d.Name, &d.BloodType, &d.Phone, &d.Location, &d.LastDonation, &d.Available, &d.CreatedAt)
	return d, err
}

// Create inserts a donor and fills its ID and CreatedAt.
func (r *DonorRepo) Create(ctx context.Context, d *domain.Donor) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO donors (name, blood_type, phone, location, last_donation, available)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		d.Name, string(d.BloodType), d.Phone, d.Location, d.LastDonation, d.Available,
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return fmt.Errorf("create donor: %w", err)
	}
	return nil
}

// Get returns donor by its ID, or nil if there is none.
func (r *DonorRepo) Get(ctx context.Context, id int64) (*domain.Donor, error) {
	d, err := scanDonor(r.db.QueryRow(ctx, `SELECT `+donorColumns+` FROM donors WHERE id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get donor %d: %w", id, err)
	}
	return &d, nil
}

// List returns donors ordered by id, narrowed by the filter.
func (r *DonorRepo) List(ctx context.Context, f domain.DonorFilter) ([]domain.Donor, error) {
	q := `SELECT ` + donorColumns + ` FROM donors WHERE TRUE`
	args := make([]any, 0, 4)
	if f.BloodType != nil {
		args = append(args, string(*f.BloodType))
		q += fmt.Sprintf(" AND blood_type = $%d", len(args))
	}
	if f.Available != nil {
		args = append(args, *f.Available)
		q += fmt.Sprintf(" AND available = $%d", len(args))
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

// ListAvailableByTypes returns available donors whose blood type is in types.
func (r *DonorRepo) ListAvailableByTypes(ctx context.Context, types []domain.BloodType) ([]domain.Donor, error) {
	if len(types) == 0 {
		return []domain.Donor{}, nil
	}
	return r.query(ctx, `
		SELECT `+donorColumns+`
		FROM donors
		WHERE available AND blood_type = ANY($1)
		ORDER BY id`, bloodTypesToStrings(types))
}

func (r *DonorRepo) query(ctx context.Context, q string, args ...any) ([]domain.Donor, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Donor, 0)
	for rows.Next() {
		d, err := scanDonor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan donor: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ToggleAvailability flips the availability flag and returns the updated donor, or nil if there is none.
func (r *DonorRepo) ToggleAvailability(ctx context.Context, id int64) (*domain.Donor, error) {
	return r.updateAvailability(ctx, `
		UPDATE donors SET available = NOT available, updated_at = now()
		WHERE id = $1
		RETURNING `+donorColumns, id)
}

// SetAvailability sets the availability flag and returns the updated donor, or nil if there is none.
func (r *DonorRepo) SetAvailability(ctx context.Context, id int64, available bool) (*domain.Donor, error) {
	return r.updateAvailability(ctx, `
		UPDATE donors SET available = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+donorColumns, id, available)
}

func (r *DonorRepo) updateAvailability(ctx context.Context, q string, args ...any) (*domain.Donor, error) {
	d, err := scanDonor(r.db.QueryRow(ctx, q, args...))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update donor availability: %w", err)
	}
	return &d, nil
}

// Count returns the number of registered donors.
func (r *DonorRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM donors`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count donors: %w", err)
	}
	return n, nil
}
