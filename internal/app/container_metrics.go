package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"blood-donor-connector/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal     prometheus.Counter       `name:"rate_limit_exceeded_total"`
	DonorsRegisteredTotal      prometheus.Counter       `name:"donors_registered_total"`
	RequestsSubmittedTotal     *prometheus.CounterVec   `name:"requests_submitted_total"`
	RequestsFulfilledTotal     prometheus.Counter       `name:"requests_fulfilled_total"`
	DonorResponsesTotal        prometheus.Counter       `name:"donor_responses_total"`
	NotificationsRecordedTotal prometheus.Counter       `name:"notifications_recorded_total"`
	DonorMatches               prometheus.Histogram     `name:"donor_matches"`
	HTTPRequestsTotal          *prometheus.CounterVec   `name:"http_requests_total"`
	HTTPRequestDuration        *prometheus.HistogramVec `name:"http_request_duration_seconds"`
}

// register adds c to the default registry. When an equal collector is
// already there (a second container in the same process) the existing one is
// returned so both keep reporting into the same series.
func register[T prometheus.Collector](name string, c T) (T, error) {
	if err := prometheus.DefaultRegisterer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}

func provideMetrics() (metricsOut, error) {
	var (
		out metricsOut
		err error
	)
	if out.RateLimitExceededTotal, err = register("rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal()); err != nil {
		return out, err
	}
	if out.DonorsRegisteredTotal, err = register("donors_registered_total", metrics.NewDonorsRegisteredTotal()); err != nil {
		return out, err
	}
	if out.RequestsSubmittedTotal, err = register("requests_submitted_total", metrics.NewRequestsSubmittedTotal()); err != nil {
		return out, err
	}
	if out.RequestsFulfilledTotal, err = register("requests_fulfilled_total", metrics.NewRequestsFulfilledTotal()); err != nil {
		return out, err
	}
	if out.DonorResponsesTotal, err = register("donor_responses_total", metrics.NewDonorResponsesTotal()); err != nil {
		return out, err
	}
	if out.NotificationsRecordedTotal, err = register("notifications_recorded_total", metrics.NewNotificationsRecordedTotal()); err != nil {
		return out, err
	}
	if out.DonorMatches, err = register("donor_matches", metrics.NewDonorMatches()); err != nil {
		return out, err
	}
	if out.HTTPRequestsTotal, err = register("http_requests_total", metrics.NewHTTPRequestsTotal()); err != nil {
		return out, err
	}
	if out.HTTPRequestDuration, err = register("http_request_duration_seconds", metrics.NewHTTPRequestDuration()); err != nil {
		return out, err
	}
	return out, nil
}

func registerMetrics(container *dig.Container) error {
	return provideAll(container, provideMetrics)
}
