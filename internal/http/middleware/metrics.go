package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// HTTPRecorder receives one observation per request.
type HTTPRecorder interface {
	RecordHTTPRequest(method, path string, statusCode int, d time.Duration)
}

// Metrics records request counts and latencies labelled by route pattern.
func Metrics(rec HTTPRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		rec.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
