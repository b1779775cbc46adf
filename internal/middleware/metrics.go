package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the HTTP instrumentation collectors
type Metrics struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
	rateLimitRejects prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recipes_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "recipes_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		requestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "recipes_http_requests_in_flight",
				Help: "Current number of HTTP requests being processed",
			},
		),
		rateLimitRejects: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "recipes_rate_limit_rejects_total",
				Help: "Total number of requests rejected due to rate limiting",
			},
		),
	}
	reg.MustRegister(m.requestsTotal, m.requestDuration, m.requestsInFlight, m.rateLimitRejects)
	return m
}

// Middleware records request count, latency and in-flight requests.
// The path label is the route template so ids do not explode cardinality.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.requestsInFlight.Inc()
		defer m.requestsInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.requestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// RateLimitRejected counts a request refused by the rate limiter
func (m *Metrics) RateLimitRejected() {
	if m != nil {
		m.rateLimitRejects.Inc()
	}
}
