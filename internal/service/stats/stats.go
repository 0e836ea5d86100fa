package stats

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"blood-donor-connector/internal/domain"
)

// Counter counts rows of one collection.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// Service computes the dashboard counters.
type Service struct {
	donors           Counter
	requests         Counter
	hospitals        Counter
	operationTimeout time.Duration
}

// NewService creates a new stats Service.
func NewService(donors, requests, hospitals Counter, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		donors:           donors,
		requests:         requests,
		hospitals:        hospitals,
		operationTimeout: timeout,
	}
}

// Summary returns the collection sizes and the lives-saved estimate.
func (s *Service) Summary(ctx context.Context) (domain.Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	var out domain.Stats
	g, gctx := errgroup.WithContext(ctx)
	count := func(name string, c Counter, dst *int64) {
		g.Go(func() error {
			n, err := c.Count(gctx)
			if err != nil {
				return fmt.Errorf("count %s: %w", name, err)
			}
			*dst = n
			return nil
		})
	}
	count("donors", s.donors, &out.Donors)
	count("requests", s.requests, &out.Requests)
	count("hospitals", s.hospitals, &out.Hospitals)

	if err := g.Wait(); err != nil {
		return domain.Stats{}, err
	}
	out.LivesSaved = domain.EstimateLivesSaved(out.Donors)
	return out, nil
}
