package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one http_request record per request once the handlers are
// done. 4xx responses log at warn and 5xx at error.
func Logger(l *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		began := time.Now()
		c.Next()

		req := c.Request
		target := req.URL.Path
		if req.URL.RawQuery != "" {
			target += "?" + req.URL.RawQuery
		}
		status := c.Writer.Status()

		attrs := make([]slog.Attr, 0, 9)
		attrs = append(attrs,
			slog.String("request_id", GetRequestID(c)),
			slog.String("method", req.Method),
			slog.String("path", target),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(began)),
			slog.Int("bytes", c.Writer.Size()),
			slog.String("client_ip", c.ClientIP()),
		)
		if sid := SessionID(c); sid != "" {
			attrs = append(attrs, slog.String("view_session", sid))
		}
		if errs := c.Errors.String(); errs != "" {
			attrs = append(attrs, slog.String("errors", errs))
		}

		l.LogAttrs(req.Context(), levelFor(status), "http_request", attrs...)
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
