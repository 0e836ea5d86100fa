package app

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"blood-donor-connector/internal/config"
	"blood-donor-connector/internal/logx"
	"blood-donor-connector/internal/repository"
	"blood-donor-connector/internal/service/matching"
	"blood-donor-connector/internal/service/notify"
	"blood-donor-connector/internal/service/request"
	"blood-donor-connector/internal/transport/kafka"
)

func newProducer(cfg *config.Config, logger logx.Logger) (*kafka.Producer, error) {
	if !cfg.Kafka.Enabled() {
		logger.Info("kafka disabled, request events will not be published")
		return nil, nil
	}
	sp, err := kafka.NewSyncProducer(cfg.Kafka.Brokers)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return kafka.NewProducer(sp, cfg.Kafka.Topic, logger), nil
}

// newPublisher keeps a disabled producer out of the request service as a
// typed nil.
func newPublisher(p *kafka.Producer) request.Publisher {
	if p == nil {
		return nil
	}
	return p
}

func registerMessaging(container *dig.Container) error {
	return provideAll(container, newProducer, newPublisher)
}

type processorIn struct {
	dig.In
	Matcher  *matching.Matcher
	Store    *repository.NotificationRepo
	Logger   logx.Logger
	Recorded prometheus.Counter `name:"notifications_recorded_total"`
}

func newProcessor(in processorIn) *notify.Processor {
	return notify.NewProcessor(in.Matcher, in.Store, in.Recorded, in.Logger)
}

// makeNotifyHandler bounds each event by timeout and hands it to the processor.
func makeNotifyHandler(h eventHandler, timeout time.Duration) kafka.HandleFunc {
	return func(ctx context.Context, e notify.Event) error {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return h.Handle(ctx, e)
	}
}

type eventHandler interface {
	Handle(ctx context.Context, e notify.Event) error
}

func newConsumer(cfg *config.Config, logger logx.Logger, p *notify.Processor, timeout time.Duration) (*kafka.Consumer, error) {
	return kafka.NewConsumer(
		logger,
		cfg.Kafka.Brokers,
		cfg.Kafka.GroupID,
		cfg.Kafka.Topic,
		makeNotifyHandler(p, timeout),
	)
}
