package prometheus

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/ports"
)

type PrometheusAdapter struct {
	appName               string
	httpRequestsTotal     *prometheus.CounterVec
	httpRequestDuration   *prometheus.HistogramVec
	authAttemptsTotal     *prometheus.CounterVec
	directoryLookupsTotal *prometheus.CounterVec
}

// NewPrometheusAdapter registers the service collectors on reg.
// Pass prometheus.DefaultRegisterer to expose them through promhttp.Handler().
func NewPrometheusAdapter(reg prometheus.Registerer, appName string) ports.MetricsPort {
	adapter := &PrometheusAdapter{
		appName: appName,
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: ports.MetricHTTPRequests,
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status", "app_name"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    ports.MetricHTTPDuration,
				Help:    "Duration API requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method", "status", "app_name"},
		),
		authAttemptsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: ports.MetricAuthAttempts,
				Help: "Credential checks by operation and outcome",
			},
			[]string{"op", "outcome", "app_name"},
		),
		directoryLookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: ports.MetricDirectoryLookups,
				Help: "User directory lookups by outcome",
			},
			[]string{"outcome", "app_name"},
		),
	}

	reg.MustRegister(
		adapter.httpRequestsTotal,
		adapter.httpRequestDuration,
		adapter.authAttemptsTotal,
		adapter.directoryLookupsTotal,
	)

	adapter.httpRequestsTotal.WithLabelValues("/health", "GET", "200", appName).Add(0)
	return adapter
}

func (p *PrometheusAdapter) IncrementCounter(name string, labels map[string]string) {
	switch name {
	case ports.MetricAuthAttempts:
		p.authAttemptsTotal.WithLabelValues(labels["op"], labels["outcome"], p.appName).Inc()
	case ports.MetricDirectoryLookups:
		p.directoryLookupsTotal.WithLabelValues(labels["outcome"], p.appName).Inc()
	default:
		p.httpRequestsTotal.WithLabelValues(
			labels["path"],
			labels["method"],
			labels["status"],
			p.appName,
		).Inc()
	}
}

func (p *PrometheusAdapter) RecordDuration(name string, duration time.Duration, labels map[string]string) {
	p.httpRequestDuration.WithLabelValues(
		labels["path"],
		labels["method"],
		labels["status"],
		p.appName,
	).Observe(duration.Seconds())
}

func (p *PrometheusAdapter) RecordMetrics(c *gin.Context, start time.Time) {
	status := fmt.Sprintf("%d", c.Writer.Status())
	path := c.FullPath()
	if path == "" {
		path = c.Request.URL.Path
	}
	labels := map[string]string{
		"path":   path,
		"method": c.Request.Method,
		"status": status,
	}

	p.IncrementCounter(ports.MetricHTTPRequests, labels)
	p.RecordDuration(ports.MetricHTTPDuration, time.Since(start), labels)
}
