package middleware

import (
	"time"

	"reservation-book/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware labels requests by route template so ids never reach label values.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.IncRequestsInFlight()
		defer m.DecRequestsInFlight()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
