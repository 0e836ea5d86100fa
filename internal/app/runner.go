package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"
	"golang.org/x/sync/errgroup"

	"blood-donor-connector/internal/logx"
	"blood-donor-connector/internal/tracing"
	"blood-donor-connector/internal/transport/kafka"
)

const shutdownTimeout = 15 * time.Second

// Runner runs the API servers from a built container.
type Runner struct {
	runFn  func(*dig.Container) error
	exitFn func(int)
}

// NewRunner returns a Runner bound to the API run loop.
func NewRunner() *Runner {
	return &Runner{runFn: run, exitFn: os.Exit}
}

// MustRun blocks until shutdown. Unexpected errors terminate the process.
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logger := containerLogger(container)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		if r.exitFn != nil {
			r.exitFn(1)
		}
	}
}

func containerLogger(container *dig.Container) logx.Logger {
	var logger logx.Logger
	if err := container.Invoke(func(l logx.Logger) { logger = l }); err != nil || logger == nil {
		return logx.NewJSON(os.Stderr, "info")
	}
	return logger
}

func run(container *dig.Container) error {
	return container.Invoke(appRun)
}

type appIn struct {
	dig.In
	Ctx      context.Context
	Logger   logx.Logger
	Pool     *pgxpool.Pool
	Server   *http.Server
	Pprof    *http.Server         `name:"pprof_server" optional:"true"`
	Producer *kafka.Producer      `optional:"true"`
	Tracing  tracing.ShutdownFunc `optional:"true"`
}

func appRun(in appIn) error {
	g, gctx := errgroup.WithContext(in.Ctx)

	serve := func(name string, srv *http.Server) {
		g.Go(func() error {
			in.Logger.Info("listening", logx.String("server", name), logx.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("%s server: %w", name, err)
			}
			return nil
		})
	}
	serve("http", in.Server)
	if in.Pprof != nil {
		serve("pprof", in.Pprof)
	}

	g.Go(func() error {
		<-gctx.Done()
		in.Logger.Info("shutting down blood-donor-connector")
		gracefulShutdown(in.Server, in.Logger, shutdownTimeout)
		if in.Pprof != nil {
			gracefulShutdown(in.Pprof, in.Logger, shutdownTimeout)
		}
		return nil
	})

	err := g.Wait()
	closeResources(in)
	if err != nil {
		return err
	}
	return in.Ctx.Err()
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown error", logx.Err(err))
	}
}

func closeResources(in appIn) {
	if err := in.Producer.Close(); err != nil {
		in.Logger.Error("kafka producer close error", logx.Err(err))
	}
	if in.Tracing != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := in.Tracing(ctx); err != nil {
			in.Logger.Error("tracing shutdown error", logx.Err(err))
		}
	}
	if in.Pool != nil {
		in.Pool.Close()
	}
}
