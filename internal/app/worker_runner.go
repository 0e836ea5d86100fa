package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"blood-donor-connector/internal/logx"
	"blood-donor-connector/internal/tracing"
	"blood-donor-connector/internal/transport/kafka"
)

// WorkerRunner runs the notification worker
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun consumes until the container context is canceled. Any other
// error panics.
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

func workerRun(
	ctx context.Context,
	pool *pgxpool.Pool,
	logger logx.Logger,
	consumer *kafka.Consumer,
	shutdownTracing tracing.ShutdownFunc,
) error {
	if consumer == nil {
		return fmt.Errorf("kafka consumer is nil: KAFKA_BROKERS, KAFKA_TOPIC and KAFKA_GROUP_ID must be set")
	}
	defer closeWorker(pool, logger, consumer, shutdownTracing)

	logger.Info("donor-notifier worker started")
	return consumer.Run(ctx)
}

func closeWorker(pool *pgxpool.Pool, logger logx.Logger, consumer *kafka.Consumer, shutdownTracing tracing.ShutdownFunc) {
	if err := consumer.Close(); err != nil {
		logger.Error("kafka close error", logx.Err(err))
	}
	if shutdownTracing != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Error("tracing shutdown error", logx.Err(err))
		}
	}
	if pool != nil {
		pool.Close()
	}
}
