package ports

import (
	"time"

	"github.com/gin-gonic/gin"
)

const (
	MetricHTTPRequests     = "http_requests_total"
	MetricHTTPDuration     = "api_request_duration_seconds"
	MetricAuthAttempts     = "auth_attempts_total"
	MetricDirectoryLookups = "directory_lookups_total"
)

type MetricsPort interface {
	IncrementCounter(name string, labels map[string]string)
	RecordDuration(name string, duration time.Duration, labels map[string]string)
	RecordMetrics(c *gin.Context, start time.Time)
}
