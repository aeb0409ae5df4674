package middleware

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Middleware wraps HTTP handlers with per-handler prometheus
// instrumentation (in-flight gauge + duration histogram).
type Middleware struct {
	registry        prometheus.Registerer
	durationBuckets []float64
}

func New(registry prometheus.Registerer, durationBuckets []float64) *Middleware {
	if durationBuckets == nil {
		durationBuckets = prometheus.DefBuckets
	}
	return &Middleware{
		registry:        registry,
		durationBuckets: durationBuckets,
	}
}

func (m *Middleware) WrapHandler(handlerName string, handler http.Handler) http.Handler {
	factory := promauto.With(m.registry)

	inFlight := factory.NewGauge(prometheus.GaugeOpts{
		Name:        "http_handler_in_flight_requests",
		Help:        "Current number of in-flight requests for the handler",
		ConstLabels: prometheus.Labels{"handler": handlerName},
	})
	duration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Name:        "http_handler_request_duration_seconds",
		Help:        "Histogram of handler request durations in seconds",
		Buckets:     m.durationBuckets,
		ConstLabels: prometheus.Labels{"handler": handlerName},
	}, []string{"method", "code"})

	return promhttp.InstrumentHandlerInFlight(
		inFlight,
		promhttp.InstrumentHandlerDuration(duration, handler),
	)
}
