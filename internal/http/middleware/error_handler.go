package middleware

import (
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tarimvitrin.com/app/internal/shared/apperr"
)

// ErrorPageFunc renders the HTML error page.
type ErrorPageFunc func(c *gin.Context, status int, msg, requestID string)

func WantsJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}

func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ErrorHandler turns the last error recorded on the context into a response
// when the handler did not write one.
func ErrorHandler(l *slog.Logger, page ErrorPageFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperr.HTTPStatus(err)
		publicMsg := apperr.PublicMessage(err)
		rid := GetRequestID(c)

		l.LogAttrs(c.Request.Context(), slog.LevelError, "request_failed",
			slog.String("request_id", rid),
			slog.Int("status", status),
			slog.Any("err", err),
		)

		if WantsJSON(c) {
			payload := gin.H{
				"error":      publicMsg,
				"request_id": rid,
			}
			c.AbortWithStatusJSON(status, payload)
			return
		}

		c.Abort()
		if page != nil {
			page(c, status, publicMsg, rid)
			return
		}
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(status, fmt.Sprintf("<html><body><h1>%d %s</h1><p>%s</p><p>Request ID: %s</p></body></html>",
			status, http.StatusText(status), html.EscapeString(publicMsg), html.EscapeString(rid)))
	}
}
