package donor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"blood-donor-connector/internal/apperr"
	"blood-donor-connector/internal/domain"
	"blood-donor-connector/internal/logx"
)

// Service handles donor registration and availability.
type Service struct {
	repo             donorRepository
	operationTimeout time.Duration
	logger           logx.Logger
	registered       prometheus.Counter
	now              func() time.Time
}

// NewService creates a new donor Service.
func NewService(r donorRepository, timeout time.Duration, logger logx.Logger, registered prometheus.Counter) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             r,
		operationTimeout: timeout,
		logger:           logger,
		registered:       registered,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func (s *Service) normalize(d domain.Donor) (domain.Donor, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Location = strings.TrimSpace(d.Location)

	if d.Name == "" || d.Location == "" {
		return domain.Donor{}, apperr.ErrInvalid
	}
	bt, ok := domain.ParseBloodType(string(d.BloodType))
	if !ok {
		return domain.Donor{}, fmt.Errorf("%w: %q", apperr.ErrUnsupportedBloodType, d.BloodType)
	}
	d.BloodType = bt
	if !domain.ValidatePhone(d.Phone) {
		return domain.Donor{}, fmt.Errorf("%w: phone", apperr.ErrInvalid)
	}
	if d.LastDonation != nil {
		if d.LastDonation.After(s.now()) {
			return domain.Donor{}, fmt.Errorf("%w: last donation is in the future", apperr.ErrInvalid)
		}
		ld := d.LastDonation.UTC()
		d.LastDonation = &ld
	}
	return d, nil
}

// Register validates and stores a new donor. New donors are available.
func (s *Service) Register(ctx context.Context, in domain.Donor) (domain.Donor, error) {
	d, err := s.normalize(in)
	if err != nil {
		return domain.Donor{}, err
	}
	d.ID = 0
	d.Available = true

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.repo.Create(ctx, &d); err != nil {
		return domain.Donor{}, err
	}

	s.registered.Inc()
	s.logger.Info("donor registered",
		logx.String("event", "donor_registered"),
		logx.Int64("donor_id", d.ID),
		logx.String("blood_type", string(d.BloodType)),
		logx.String("location", d.Location),
	)
	return d, nil
}

// Get returns a donor by id.
func (s *Service) Get(ctx context.Context, id int64) (domain.Donor, error) {
	if id <= 0 {
		return domain.Donor{}, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Donor{}, err
	}
	if d == nil {
		return domain.Donor{}, apperr.ErrNotFound
	}
	return *d, nil
}

// List returns donors narrowed by the filter.
func (s *Service) List(ctx context.Context, f domain.DonorFilter) ([]domain.Donor, error) {
	if (f.Limit != nil && *f.Limit < 0) || (f.Offset != nil && *f.Offset < 0) {
		return nil, apperr.ErrInvalid
	}
	if f.BloodType != nil && !f.BloodType.Valid() {
		return nil, fmt.Errorf("%w: %q", apperr.ErrUnsupportedBloodType, *f.BloodType)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.repo.List(ctx, f)
}

// ToggleAvailability flips the donor's availability flag.
func (s *Service) ToggleAvailability(ctx context.Context, id int64) (domain.Donor, error) {
	return s.updateAvailability(ctx, id, func(ctx context.Context) (*domain.Donor, error) {
		return s.repo.ToggleAvailability(ctx, id)
	})
}

// SetAvailability sets the donor's availability flag.
func (s *Service) SetAvailability(ctx context.Context, id int64, available bool) (domain.Donor, error) {
	return s.updateAvailability(ctx, id, func(ctx context.Context) (*domain.Donor, error) {
		return s.repo.SetAvailability(ctx, id, available)
	})
}

func (s *Service) updateAvailability(
	ctx context.Context,
	id int64,
	update func(context.Context) (*domain.Donor, error),
) (domain.Donor, error) {
	if id <= 0 {
		return domain.Donor{}, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := update(ctx)
	if err != nil {
		return domain.Donor{}, err
	}
	if d == nil {
		return domain.Donor{}, apperr.ErrNotFound
	}

	s.logger.Info("donor availability changed",
		logx.String("event", "donor_availability_changed"),
		logx.Int64("donor_id", d.ID),
		logx.Bool("available", d.Available),
	)
	return *d, nil
}
