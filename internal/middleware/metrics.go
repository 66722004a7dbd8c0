package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bmahler/estate-portal/api/internal/metrics"
)

// Metrics creates a middleware that records Prometheus metrics for each
// request. The route template (e.g. /api/inquiries/:id) is used as the
// endpoint label to keep cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			// Unmatched route; avoid unbounded label values.
			endpoint = "unmatched"
		}

		metrics.RecordHTTPRequest(c.Request.Method, endpoint, c.Writer.Status(), time.Since(start))
	}
}
