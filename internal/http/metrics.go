package http

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// newMetrics registers the request collectors on registerer. Collectors
// already registered by another client on the same registry are reused.
func newMetrics(registerer prometheus.Registerer) (*metrics, error) {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dnsimple",
		Subsystem: "client",
		Name:      "requests_total",
		Help:      "API requests by method, route and status code (0 for transport failures).",
	}, []string{"method", "route", "status"})

	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dnsimple",
		Subsystem: "client",
		Name:      "request_duration_seconds",
		Help:      "API request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	registeredRequests, err := register(registerer, requests)
	if err != nil {
		return nil, err
	}

	registeredLatency, err := register(registerer, latency)
	if err != nil {
		return nil, err
	}

	return &metrics{requests: registeredRequests, latency: registeredLatency}, nil
}

func register[T prometheus.Collector](registerer prometheus.Registerer, collector T) (T, error) {
	err := registerer.Register(collector)
	if err == nil {
		return collector, nil
	}

	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		existing, ok := already.ExistingCollector.(T)
		if ok {
			return existing, nil
		}
	}

	var zero T

	return zero, fmt.Errorf("registering collector: %w", err)
}

func (m *metrics) observe(req *Request, status int, elapsed time.Duration) {
	if m == nil {
		return
	}

	route := req.Route
	if route == "" {
		route = "unknown"
	}

	m.requests.WithLabelValues(req.Method, route, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(req.Method, route).Observe(elapsed.Seconds())
}
