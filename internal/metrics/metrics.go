package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewDonorsRegisteredTotal returns a counter of successful donor registrations
func NewDonorsRegisteredTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "donors_registered_total",
		Help: "Total number of registered donors",
	})
}

// NewRequestsSubmittedTotal returns a counter of stored blood requests, labelled by urgency
func NewRequestsSubmittedTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "requests_submitted_total",
		Help: "Total number of submitted blood requests",
	}, []string{"urgency"})
}

// NewRequestsFulfilledTotal returns a counter of Pending -> Fulfilled transitions
func NewRequestsFulfilledTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "requests_fulfilled_total",
		Help: "Total number of requests marked as fulfilled",
	})
}

// NewDonorResponsesTotal returns a counter of recorded donor responses
func NewDonorResponsesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "donor_responses_total",
		Help: "Total number of donor responses to open requests",
	})
}

// NewNotificationsRecordedTotal returns a counter of notifications written by the worker
func NewNotificationsRecordedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notifications_recorded_total",
		Help: "Total number of donor notifications recorded",
	})
}

// NewDonorMatches returns a histogram of compatible donors found per lookup
func NewDonorMatches() prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "donor_matches",
		Help:    "Number of compatible donors returned by a single lookup",
		Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
	})
}

// NewHTTPRequestsTotal returns a counter of served HTTP requests labelled by method, route and status
func NewHTTPRequestsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
}

// NewHTTPRequestDuration returns a histogram of HTTP request durations
func NewHTTPRequestDuration() *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
}
