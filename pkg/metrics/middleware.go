package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// GinMiddleware собирает http_requests_total и http_request_duration_seconds.
// Запросы к /metrics и /health не учитываются.
func GinMiddleware(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" || c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		start := time.Now()

		HTTPRequestsInFlight.WithLabelValues(serviceName).Inc()
		defer HTTPRequestsInFlight.WithLabelValues(serviceName).Dec()

		c.Next()

		// FullPath дает шаблон маршрута (/api/items/:idOrSlug),
		// что удерживает кардинальность метрик
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		status := strconv.Itoa(c.Writer.Status())
		HTTPRequestsTotal.WithLabelValues(serviceName, c.Request.Method, path, status).Inc()
		HTTPRequestDuration.WithLabelValues(serviceName, c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
