package notify

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"blood-donor-connector/internal/apperr"
	"blood-donor-connector/internal/domain"
	"blood-donor-connector/internal/logx"
)

// Processor turns request events into donor notifications
type Processor struct {
	matcher  DonorMatcher
	store    NotificationStore
	recorded prometheus.Counter
	logger   logx.Logger
	factory  *actionFactory
}

// NewProcessor creates a new Processor
func NewProcessor(matcher DonorMatcher, store NotificationStore, recorded prometheus.Counter, logger logx.Logger) *Processor {
	p := &Processor{
		matcher:  matcher,
		store:    store,
		recorded: recorded,
		logger:   logger,
	}
	p.factory = newActionFactory(p.onSubmitted)
	return p
}

// Handle processes a single Event. Unknown event types are ignored.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	fn, ok := p.factory.get(e.Type)
	if !ok {
		p.logger.Debug("event ignored",
			logx.String("event_id", e.ID),
			logx.String("type", e.Type),
		)
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) onSubmitted(ctx context.Context, e Event) error {
	bt, ok := domain.ParseBloodType(e.BloodType)
	if !ok {
		p.logger.Warn("event dropped: unsupported blood type",
			logx.String("event_id", e.ID),
			logx.Int64("request_id", e.RequestID),
			logx.String("blood_type", e.BloodType),
		)
		return nil
	}

	donors, err := p.matcher.CompatibleDonors(ctx, bt, e.Location)
	if err != nil {
		return err
	}

	for _, d := range donors {
		inserted, err := p.store.Insert(ctx, &domain.Notification{RequestID: e.RequestID, DonorID: d.ID})
		if errors.Is(err, apperr.ErrNotFound) {
			p.logger.Warn("event dropped: request no longer exists",
				logx.String("event_id", e.ID),
				logx.Int64("request_id", e.RequestID),
			)
			return nil
		}
		if err != nil {
			return err
		}
		if !inserted {
			continue
		}
		p.recorded.Inc()
		p.logger.Info("donor notified",
			logx.String("event", "donor_notified"),
			logx.Int64("request_id", e.RequestID),
			logx.Int64("donor_id", d.ID),
			logx.String("urgency", e.Urgency),
		)
	}
	return nil
}
