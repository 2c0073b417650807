package prometheus

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusAdapter struct {
	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	apiCalls    *prometheus.CounterVec
	apiDuration *prometheus.HistogramVec
}

func NewPrometheusAdapter(reg prometheus.Registerer) *PrometheusAdapter {
	factory := promauto.With(reg)
	return &PrometheusAdapter{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "goride_admin_http_requests_total",
			Help: "HTTP requests served by the dashboard.",
		}, []string{"method", "route", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "goride_admin_http_request_duration_seconds",
			Help:    "Latency of HTTP requests served by the dashboard.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		apiCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "goride_admin_api_calls_total",
			Help: "Calls made to the rental API.",
		}, []string{"method", "path", "outcome"}),
		apiDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "goride_admin_api_call_duration_seconds",
			Help:    "Latency of calls made to the rental API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

func (p *PrometheusAdapter) RecordMetrics(c *gin.Context, start time.Time) {
	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	status := strconv.Itoa(c.Writer.Status())
	p.requests.WithLabelValues(c.Request.Method, route, status).Inc()
	p.duration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
}

func (p *PrometheusAdapter) RecordAPICall(method, path, outcome string, duration time.Duration) {
	p.apiCalls.WithLabelValues(method, path, outcome).Inc()
	p.apiDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
