package metrics

import "github.com/prometheus/client_golang/prometheus"

// CacheMetrics exposes counters/histograms for the list query cache.
type CacheMetrics struct {
	requestsTotal *prometheus.CounterVec
	loadLatency   *prometheus.HistogramVec
	invalidations *prometheus.CounterVec
}

func NewCacheMetrics(reg prometheus.Registerer) *CacheMetrics {
	m := &CacheMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "neuroclinic",
			Subsystem: "query_cache",
			Name:      "requests_total",
			Help:      "List query cache lookups by result",
		}, []string{"entity", "result"}),
		loadLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "neuroclinic",
			Subsystem: "query_cache",
			Name:      "load_seconds",
			Help:      "Latency of list loads that reached storage",
			Buckets:   prometheus.DefBuckets,
		}, []string{"entity"}),
		invalidations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "neuroclinic",
			Subsystem: "query_cache",
			Name:      "invalidations_total",
			Help:      "Entity invalidations after writes",
		}, []string{"entity"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.loadLatency, m.invalidations)
	return m
}

func (m *CacheMetrics) ObserveRequest(entity, result string) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(entity, result).Inc()
}

func (m *CacheMetrics) ObserveLoad(entity string, seconds float64) {
	if m == nil {
		return
	}
	m.loadLatency.WithLabelValues(entity).Observe(seconds)
}

func (m *CacheMetrics) ObserveInvalidation(entity string) {
	if m == nil {
		return
	}
	m.invalidations.WithLabelValues(entity).Inc()
}

// HTTPMetrics exposes request counters and latency per route.
type HTTPMetrics struct {
	requestsTotal  *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	m := &HTTPMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "neuroclinic",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "neuroclinic",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.requestLatency)
	return m
}

func (m *HTTPMetrics) ObserveRequest(route, method string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(route, method, statusLabel(status)).Inc()
	m.requestLatency.WithLabelValues(route, method).Observe(seconds)
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
