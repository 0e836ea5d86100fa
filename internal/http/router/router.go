package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"blood-donor-connector/internal/http/handlers"
)

// ProbePaths are infrastructure endpoints that bypass rate limiting.
var ProbePaths = []string{"/ping", "/healthcheck", "/readyz", "/metrics"}

// Handlers bundles the resource handlers mounted by New.
type Handlers struct {
	Base      *handlers.Handlers
	Donors    *handlers.DonorHandler
	Requests  *handlers.RequestHandler
	Matches   *handlers.MatchHandler
	Hospitals *handlers.HospitalHandler
	Stats     *handlers.StatsHandler
}

// Options tune the middleware chain.
type Options struct {
	// Metrics is served on GET /metrics when set.
	Metrics http.Handler
	// Middleware runs after request id / real ip and before the recoverer.
	Middleware []func(http.Handler) http.Handler
	// Timeout bounds each request; defaults to 5s.
	Timeout time.Duration
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(h Handlers, opts Options) http.Handler {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	for _, mw := range opts.Middleware {
		r.Use(mw)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))

	r.Get("/ping", h.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.Base.HealthcheckHead))
	r.Get("/readyz", h.Base.Readyz)
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}

	r.Route("/donors", func(r chi.Router) {
		r.Post("/", h.Donors.Register)
		r.Get("/", h.Donors.List)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Donors.Get)
			r.Post("/availability/toggle", h.Donors.ToggleAvailability)
			r.Patch("/availability", h.Donors.SetAvailability)
			r.Get("/open-requests", h.Donors.OpenRequests)
		})
	})

	r.Route("/requests", func(r chi.Router) {
		r.Post("/", h.Requests.Submit)
		r.Get("/", h.Requests.List)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Requests.Get)
			r.Post("/fulfill", h.Requests.Fulfill)
			r.Post("/responses", h.Requests.Respond)
		})
	})

	r.Get("/matches", h.Matches.Compatible)

	r.Route("/hospitals", func(r chi.Router) {
		r.Get("/", h.Hospitals.List)
		r.Get("/lookup", h.Hospitals.Lookup)
		r.Get("/{id}", h.Hospitals.Get)
	})

	r.Get("/stats", h.Stats.Summary)

	r.NotFound(h.Base.NotFound)
	r.MethodNotAllowed(h.Base.MethodNotAllowed)

	return r
}
