package app

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/dig"

	"blood-donor-connector/internal/config"
	"blood-donor-connector/internal/http/handlers"
	"blood-donor-connector/internal/http/middleware"
	"blood-donor-connector/internal/http/middleware/ratelimit"
	"blood-donor-connector/internal/http/pprofserver"
	"blood-donor-connector/internal/http/router"
	"blood-donor-connector/internal/logx"
	"blood-donor-connector/internal/repository"
	"blood-donor-connector/internal/tracing"
)

const requestTimeout = 5 * time.Second

type routerIn struct {
	dig.In
	Logger    logx.Logger
	Base      *handlers.Handlers
	Donors    *handlers.DonorHandler
	Requests  *handlers.RequestHandler
	Matches   *handlers.MatchHandler
	Hospitals *handlers.HospitalHandler
	Stats     *handlers.StatsHandler
	RateLimit *ratelimit.Middleware

	RequestsTotal   *prometheus.CounterVec   `name:"http_requests_total"`
	RequestDuration *prometheus.HistogramVec `name:"http_request_duration_seconds"`
}

func newRouter(in routerIn) http.Handler {
	observability := middleware.Observability(
		in.Logger,
		middleware.HTTPMetrics{Requests: in.RequestsTotal, Duration: in.RequestDuration},
		tracing.Tracer("blood-donor-connector/http"),
	)
	return router.New(
		router.Handlers{
			Base:      in.Base,
			Donors:    in.Donors,
			Requests:  in.Requests,
			Matches:   in.Matches,
			Hospitals: in.Hospitals,
			Stats:     in.Stats,
		},
		router.Options{
			Metrics:    promhttp.Handler(),
			Middleware: []func(http.Handler) http.Handler{observability, in.RateLimit.Handler()},
			Timeout:    requestTimeout,
		},
	)
}

type pprofOut struct {
	dig.Out
	Server *http.Server `name:"pprof_server"`
}

func newPprofServer(cfg *config.Config) pprofOut {
	return pprofOut{Server: pprofserver.NewServer(pprofserver.Config{
		Addr: cfg.Pprof.Addr,
		User: cfg.Pprof.User,
		Pass: cfg.Pprof.Pass,
	})}
}

func registerHTTP(container *dig.Container) error {
	return provideAll(container,
		func(r *repository.HealthRepo) handlers.Pinger { return r },
		handlers.New,
		handlers.NewDonorUsecase,
		handlers.NewRequestUsecase,
		handlers.NewMatchUsecase,
		handlers.NewHospitalUsecase,
		handlers.NewStatsUsecase,
		handlers.NewDonorHandler,
		handlers.NewRequestHandler,
		handlers.NewMatchHandler,
		handlers.NewHospitalHandler,
		handlers.NewStatsHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		newRouter,
		newHTTPServer,
		newPprofServer,
	)
}
