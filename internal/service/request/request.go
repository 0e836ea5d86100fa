package request

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"blood-donor-connector/internal/apperr"
	"blood-donor-connector/internal/domain"
	"blood-donor-connector/internal/logx"
	"blood-donor-connector/internal/ports/requesttx"
	"blood-donor-connector/internal/tracing"
)

// Metrics groups the counters updated by the request service.
type Metrics struct {
	Submitted *prometheus.CounterVec
	Fulfilled prometheus.Counter
	Responses prometheus.Counter
}

// Deps are the collaborators of the request service.
type Deps struct {
	Requests  requestRepository
	Donors    donorReader
	Hospitals hospitalReader
	Matcher   donorMatcher
	// Publisher may be nil when messaging is disabled.
	Publisher Publisher
}

// Service handles blood requests posted by hospitals and donor responses to them.
type Service struct {
	repo             requestRepository
	donors           donorReader
	hospitals        hospitalReader
	matcher          donorMatcher
	publisher        Publisher
	metrics          Metrics
	operationTimeout time.Duration
	logger           logx.Logger
	tracer           trace.Tracer
	now              func() time.Time
}

// NewService creates a new request Service.
func NewService(deps Deps, m Metrics, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             deps.Requests,
		donors:           deps.Donors,
		hospitals:        deps.Hospitals,
		matcher:          deps.Matcher,
		publisher:        deps.Publisher,
		metrics:          m,
		operationTimeout: timeout,
		logger:           logger,
		tracer:           tracing.Tracer("request"),
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func validateSubmit(q domain.Request) (domain.Request, error) {
	q.Hospital = strings.TrimSpace(q.Hospital)
	q.Location = strings.TrimSpace(q.Location)
	if q.Hospital == "" || q.Location == "" {
		return domain.Request{}, apperr.ErrInvalid
	}
	bt, ok := domain.ParseBloodType(string(q.BloodType))
	if !ok {
		return domain.Request{}, fmt.Errorf("%w: %q", apperr.ErrUnsupportedBloodType, q.BloodType)
	}
	q.BloodType = bt
	if q.Units <= 0 {
		return domain.Request{}, fmt.Errorf("%w: units must be positive", apperr.ErrInvalid)
	}
	if !q.Urgency.Valid() {
		return domain.Request{}, fmt.Errorf("%w: urgency %q", apperr.ErrInvalid, q.Urgency)
	}
	return q, nil
}

// Submit stores a new pending request and reports how many donors match it.
func (s *Service) Submit(ctx context.Context, in domain.Request) (domain.SubmitResult, error) {
	q, err := validateSubmit(in)
	if err != nil {
		return domain.SubmitResult{}, err
	}
	q.ID = 0
	q.Status = domain.RequestPending
	q.CreatedAt = s.now()

	ctx, span := s.tracer.Start(ctx, "request.Submit")
	defer span.End()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.repo.Create(ctx, &q); err != nil {
		tracing.RecordError(span, err)
		return domain.SubmitResult{}, err
	}
	span.SetAttributes(attribute.Int64("request.id", q.ID))

	matched, err := s.matcher.CompatibleDonors(ctx, q.BloodType, q.Location)
	if err != nil {
		s.logger.Warn("match lookup failed after submit",
			logx.Int64("request_id", q.ID),
			logx.Err(err),
		)
		matched = nil
	}

	if s.publisher != nil {
		if err := s.publisher.PublishRequestSubmitted(ctx, q); err != nil {
			s.logger.Warn("publish request submitted failed",
				logx.Int64("request_id", q.ID),
				logx.Err(err),
			)
		}
	}

	s.metrics.Submitted.WithLabelValues(string(q.Urgency)).Inc()
	s.logger.Info("request submitted",
		logx.String("event", "request_submitted"),
		logx.Int64("request_id", q.ID),
		logx.String("hospital", q.Hospital),
		logx.String("blood_type", string(q.BloodType)),
		logx.Int("units", q.Units),
		logx.String("urgency", string(q.Urgency)),
		logx.Int("matching_donors", len(matched)),
	)

	return domain.SubmitResult{Request: q, MatchingDonors: len(matched)}, nil
}

// Get returns a request by id.
func (s *Service) Get(ctx context.Context, id int64) (domain.Request, error) {
	if id <= 0 {
		return domain.Request{}, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	q, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Request{}, err
	}
	if q == nil {
		return domain.Request{}, apperr.ErrNotFound
	}
	return *q, nil
}

// List returns requests narrowed by the filter.
func (s *Service) List(ctx context.Context, f domain.RequestFilter) ([]domain.Request, error) {
	if (f.Limit != nil && *f.Limit < 0) || (f.Offset != nil && *f.Offset < 0) {
		return nil, apperr.ErrInvalid
	}
	if f.Status != nil && !f.Status.Valid() {
		return nil, fmt.Errorf("%w: status %q", apperr.ErrInvalid, *f.Status)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.repo.List(ctx, f)
}

// Fulfill marks a pending request as fulfilled. Fulfilling a fulfilled
// request returns it unchanged.
func (s *Service) Fulfill(ctx context.Context, id int64) (domain.Request, error) {
	if id <= 0 {
		return domain.Request{}, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		result  domain.Request
		changed bool
	)
	err := s.repo.WithTx(ctx, func(tx requesttx.Repository) error {
		q, err := tx.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if q == nil {
			return apperr.ErrNotFound
		}
		result = *q
		if q.Status == domain.RequestFulfilled {
			return nil
		}
		if !q.Status.CanTransitionTo(domain.RequestFulfilled) {
			return fmt.Errorf("%w: request %d is %s", apperr.ErrConflict, id, q.Status)
		}
		if err := tx.UpdateStatus(ctx, id, domain.RequestFulfilled); err != nil {
			return err
		}
		result.Status = domain.RequestFulfilled
		changed = true
		return nil
	})
	if err != nil {
		return domain.Request{}, err
	}

	if changed {
		s.metrics.Fulfilled.Inc()
		s.logger.Info("request fulfilled",
			logx.String("event", "request_fulfilled"),
			logx.Int64("request_id", result.ID),
			logx.String("hospital", result.Hospital),
		)
	}
	return result, nil
}

// OpenForDonor returns the pending requests a donor of the given type may
// donate to.
func (s *Service) OpenForDonor(ctx context.Context, donorType domain.BloodType) ([]domain.Request, error) {
	if !donorType.Valid() {
		return nil, fmt.Errorf("%w: %q", apperr.ErrUnsupportedBloodType, donorType)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.repo.ListPendingByTypes(ctx, domain.RecipientTypes(donorType))
}

// Respond records that a donor can give blood for a pending request and
// returns the hospital contact details. Repeated answers are accepted once.
func (s *Service) Respond(ctx context.Context, requestID, donorID int64) (domain.ResponseResult, error) {
	if requestID <= 0 || donorID <= 0 {
		return domain.ResponseResult{}, apperr.ErrInvalid
	}

	ctx, span := s.tracer.Start(ctx, "request.Respond", trace.WithAttributes(
		attribute.Int64("request.id", requestID),
		attribute.Int64("donor.id", donorID),
	))
	defer span.End()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.donors.Get(ctx, donorID)
	if err != nil {
		tracing.RecordError(span, err)
		return domain.ResponseResult{}, err
	}
	if d == nil {
		return domain.ResponseResult{}, fmt.Errorf("%w: donor %d does not exist", apperr.ErrInvalid, donorID)
	}
	if !d.Available {
		return domain.ResponseResult{}, fmt.Errorf("%w: donor %d is unavailable", apperr.ErrInvalid, donorID)
	}

	var (
		q        domain.Request
		inserted bool
	)
	err = s.repo.WithTx(ctx, func(tx requesttx.Repository) error {
		locked, err := tx.GetForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if locked == nil {
			return apperr.ErrNotFound
		}
		if locked.Status != domain.RequestPending {
			return fmt.Errorf("%w: request %d is %s", apperr.ErrConflict, requestID, locked.Status)
		}
		if !domain.CanDonateTo(d.BloodType, locked.BloodType) {
			return fmt.Errorf("%w: %s cannot donate to %s", apperr.ErrInvalid, d.BloodType, locked.BloodType)
		}
		q = *locked
		inserted, err = tx.InsertResponse(ctx, &domain.Response{RequestID: requestID, DonorID: donorID})
		return err
	})
	if err != nil {
		tracing.RecordError(span, err)
		return domain.ResponseResult{}, err
	}

	h, err := s.hospitals.GetByName(ctx, q.Hospital)
	if err != nil {
		tracing.RecordError(span, err)
		return domain.ResponseResult{}, err
	}

	if inserted {
		s.metrics.Responses.Inc()
		s.logger.Info("donor responded",
			logx.String("event", "donor_responded"),
			logx.Int64("request_id", requestID),
			logx.Int64("donor_id", donorID),
		)
	}
	return domain.ResponseResult{Request: q, DonorID: donorID, Hospital: h}, nil
}
