package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"blood-donor-connector/internal/config"
	"blood-donor-connector/internal/logx"
	"blood-donor-connector/internal/repository"
	"blood-donor-connector/internal/service/donor"
	"blood-donor-connector/internal/service/hospital"
	"blood-donor-connector/internal/service/matching"
	"blood-donor-connector/internal/service/request"
	"blood-donor-connector/internal/service/stats"
	"blood-donor-connector/internal/tracing"
)

// DBConnectFunc opens a pool, retrying until it answers.
type DBConnectFunc func(ctx context.Context, logger logx.Logger, dsn string, retries int, delay time.Duration) (*pgxpool.Pool, error)

// DBPrepareFunc brings the schema up to date and optionally seeds it.
type DBPrepareFunc func(ctx context.Context, logger logx.Logger, pool *pgxpool.Pool, seed bool) error

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	loadConfig func() (*config.Config, error)
	dbConnect  DBConnectFunc
	dbPrepare  DBPrepareFunc
	logFatalf  func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		loadConfig: config.Load,
		dbConnect:  connectDbWithRetry,
		dbPrepare:  prepareSchema,
		logFatalf:  log.Fatalf,
	}
}

// WithConfig replaces config loading with a fixed value.
func (b *ContainerBuilder) WithConfig(cfg *config.Config) *ContainerBuilder {
	if cfg != nil {
		b.loadConfig = func() (*config.Config, error) { return cfg, nil }
	}
	return b
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn DBConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithDBPrepare sets the schema migration function
func (b *ContainerBuilder) WithDBPrepare(fn DBPrepareFunc) *ContainerBuilder {
	if fn != nil {
		b.dbPrepare = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds the API container or exits through logFatalf.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx, b.loadConfig); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect, b.dbPrepare); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerMetrics(container); err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	if err := registerRepositories(container); err != nil {
		return nil, fmt.Errorf("repositories: %w", err)
	}
	if err := registerMessaging(container); err != nil {
		return nil, fmt.Errorf("messaging: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds the API container from the environment.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context, loadConfig func() (*config.Config, error)) error {
	return provideAll(container,
		func() context.Context { return ctx },
		loadConfig,
		NewLogger,
		provideTracing,
		func(cfg *config.Config) time.Duration { return cfg.OperationTimeout },
	)
}

func provideTracing(ctx context.Context, cfg *config.Config, logger logx.Logger) (tracing.ShutdownFunc, error) {
	shutdown, err := tracing.Setup(ctx, cfg.Tracing.Endpoint, cfg.Tracing.ServiceName)
	if err != nil {
		return nil, err
	}
	if cfg.Tracing.Endpoint != "" {
		logger.Info("tracing enabled",
			logx.String("endpoint", cfg.Tracing.Endpoint),
			logx.String("service", cfg.Tracing.ServiceName),
		)
	}
	return shutdown, nil
}

func registerDb(container *dig.Container, dbConnect DBConnectFunc, dbPrepare DBPrepareFunc) error {
	providerDB := func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*pgxpool.Pool, error) {
		pool, err := dbConnect(ctx, logger, cfg.DB.DSN(), 10, time.Second)
		if err != nil {
			return nil, err
		}
		if err := dbPrepare(ctx, logger, pool, cfg.Seed); err != nil {
			pool.Close()
			return nil, err
		}
		return pool, nil
	}
	return provideAll(container, providerDB)
}

func registerRepositories(container *dig.Container) error {
	return provideAll(container,
		repository.NewHealthRepo,
		repository.NewDonorRepo,
		repository.NewRequestRepo,
		repository.NewHospitalRepo,
		repository.NewNotificationRepo,
	)
}

type matcherIn struct {
	dig.In
	Donors  *repository.DonorRepo
	Timeout time.Duration
	Logger  logx.Logger
	Matches prometheus.Histogram `name:"donor_matches"`
}

func newMatcher(in matcherIn) *matching.Matcher {
	return matching.NewMatcher(in.Donors, in.Timeout, in.Logger, in.Matches)
}

type donorServiceIn struct {
	dig.In
	Repo       *repository.DonorRepo
	Timeout    time.Duration
	Logger     logx.Logger
	Registered prometheus.Counter `name:"donors_registered_total"`
}

func newDonorService(in donorServiceIn) *donor.Service {
	return donor.NewService(in.Repo, in.Timeout, in.Logger, in.Registered)
}

type requestServiceIn struct {
	dig.In
	Requests  *repository.RequestRepo
	Donors    *repository.DonorRepo
	Hospitals *repository.HospitalRepo
	Matcher   *matching.Matcher
	Publisher request.Publisher `optional:"true"`
	Timeout   time.Duration
	Logger    logx.Logger

	Submitted *prometheus.CounterVec `name:"requests_submitted_total"`
	Fulfilled prometheus.Counter     `name:"requests_fulfilled_total"`
	Responses prometheus.Counter     `name:"donor_responses_total"`
}

func newRequestService(in requestServiceIn) *request.Service {
	return request.NewService(
		request.Deps{
			Requests:  in.Requests,
			Donors:    in.Donors,
			Hospitals: in.Hospitals,
			Matcher:   in.Matcher,
			Publisher: in.Publisher,
		},
		request.Metrics{
			Submitted: in.Submitted,
			Fulfilled: in.Fulfilled,
			Responses: in.Responses,
		},
		in.Timeout,
		in.Logger,
	)
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		newMatcher,
		newDonorService,
		newRequestService,
		func(repo *repository.HospitalRepo, timeout time.Duration) *hospital.Service {
			return hospital.NewService(repo, timeout)
		},
		func(
			donors *repository.DonorRepo,
			requests *repository.RequestRepo,
			hospitals *repository.HospitalRepo,
			timeout time.Duration,
		) *stats.Service {
			return stats.NewService(donors, requests, hospitals, timeout)
		},
	)
}

func newHTTPServer(cfg *config.Config, mux http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
