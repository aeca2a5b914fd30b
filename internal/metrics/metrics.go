package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)
)

// Collectors register once per process; handles are cheap per-service labels.
func init() {
	prometheus.MustRegister(requestCounter, requestDuration)
}

// HTTPMetrics collects request counters and latency histograms for a service.
type HTTPMetrics struct {
	ServiceName string
}

// NewHTTPMetrics returns a collector handle labeled with the service name.
func NewHTTPMetrics(serviceName string) *HTTPMetrics {
	return &HTTPMetrics{ServiceName: serviceName}
}

// Middleware returns a gin middleware recording per-request metrics. The
// route template is used as the path label to keep cardinality bounded.
func (m *HTTPMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		requestCounter.WithLabelValues(m.ServiceName, c.Request.Method, path, status).Inc()
		requestDuration.WithLabelValues(m.ServiceName, c.Request.Method, path, status).
			Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
