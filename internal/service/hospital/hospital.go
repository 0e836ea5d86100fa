package hospital

import (
	"context"
	"strings"
	"time"

	"blood-donor-connector/internal/apperr"
	"blood-donor-connector/internal/domain"
)

type hospitalRepository interface {
	List(ctx context.Context) ([]domain.Hospital, error)
	Get(ctx context.Context, id int64) (*domain.Hospital, error)
	GetByName(ctx context.Context, name string) (*domain.Hospital, error)
}

// Service exposes the hospital reference data.
type Service struct {
	repo             hospitalRepository
	operationTimeout time.Duration
}

// NewService creates a new hospital Service.
func NewService(r hospitalRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// List returns all hospitals.
func (s *Service) List(ctx context.Context) ([]domain.Hospital, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx)
}

// Get returns a hospital by id.
func (s *Service) Get(ctx context.Context, id int64) (domain.Hospital, error) {
	if id <= 0 {
		return domain.Hospital{}, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return found(s.repo.Get(ctx, id))
}

// GetByName returns a hospital by its exact name.
func (s *Service) GetByName(ctx context.Context, name string) (domain.Hospital, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Hospital{}, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return found(s.repo.GetByName(ctx, name))
}

func found(h *domain.Hospital, err error) (domain.Hospital, error) {
	if err != nil {
		return domain.Hospital{}, err
	}
	if h == nil {
		return domain.Hospital{}, apperr.ErrNotFound
	}
	return *h, nil
}
