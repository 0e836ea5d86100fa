package matching

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"blood-donor-connector/internal/domain"
	"blood-donor-connector/internal/logx"
	"blood-donor-connector/internal/tracing"
)

// Matcher finds donors compatible with a requested blood type.
type Matcher struct {
	donors           donorSource
	operationTimeout time.Duration
	logger           logx.Logger
	matches          prometheus.Observer
	tracer           trace.Tracer
}

// NewMatcher creates a new Matcher.
func NewMatcher(donors donorSource, timeout time.Duration, logger logx.Logger, matches prometheus.Observer) *Matcher {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Matcher{
		donors:           donors,
		operationTimeout: timeout,
		logger:           logger,
		matches:          matches,
		tracer:           tracing.Tracer("matching"),
	}
}

func (m *Matcher) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.operationTimeout)
}

// CompatibleDonors returns the available donors eligible to donate to a
// recipient of the requested type. Unknown types yield an empty result.
func (m *Matcher) CompatibleDonors(ctx context.Context, requested domain.BloodType, location string) ([]domain.Donor, error) {
	ctx, span := m.tracer.Start(ctx, "matching.CompatibleDonors",
		trace.WithAttributes(
			attribute.String("blood_type", string(requested)),
			attribute.String("location", location),
		))
	defer span.End()

	if !requested.Valid() {
		m.logger.Debug("unsupported blood type in match lookup",
			logx.String("blood_type", string(requested)),
		)
		m.matches.Observe(0)
		return []domain.Donor{}, nil
	}

	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	candidates, err := m.donors.ListAvailableByTypes(ctx, domain.EligibleDonorTypes(requested))
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	out := Filter(candidates, requested, location)
	m.matches.Observe(float64(len(out)))
	span.SetAttributes(attribute.Int("donor.count", len(out)))
	return out, nil
}
