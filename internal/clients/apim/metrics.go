package apim

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/aussiebroadwan/clients/internal/clients/domain"
)

var (
	upstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "apim_requests_total",
			Help: "Total number of API manager store calls by operation and outcome",
		},
		[]string{"op", "outcome"},
	)

	upstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "apim_request_duration_seconds",
			Help:    "API manager store call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)
)

// observe records one operation. Call it deferred with a pointer to the
// named error result.
func observe(op string, start time.Time, errp *error) {
	upstreamRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	upstreamRequestsTotal.WithLabelValues(op, outcome(*errp)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, domain.ErrAuthenticationFailure):
		return "auth_failure"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrUpstreamRejected):
		return "rejected"
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return "unavailable"
	case errors.Is(err, domain.ErrMalformedResponse):
		return "malformed"
	default:
		return "error"
	}
}
