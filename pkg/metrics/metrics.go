package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "backoffice",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Inbound requests by method, route and status.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "backoffice",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Inbound request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	BackendRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "backoffice",
		Subsystem: "backend",
		Name:      "requests_total",
		Help:      "Outbound calls to the PourPal API by method and status code.",
	}, []string{"method", "code"})

	CacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "backoffice",
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Query cache lookups.",
	}, []string{"result"}) // hit / miss
)

// ObserveRequest records one inbound request.
func ObserveRequest(method, route string, status int, d time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveCache records a cache lookup.
func ObserveCache(hit bool) {
	if hit {
		CacheLookupsTotal.WithLabelValues("hit").Inc()
		return
	}
	CacheLookupsTotal.WithLabelValues("miss").Inc()
}

// InstrumentTransport counts outbound calls made through next.
func InstrumentTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return promhttp.InstrumentRoundTripperCounter(BackendRequestsTotal, next)
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
