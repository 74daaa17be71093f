package render

import (
	"bytes"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
)

// Component renders comp into a buffer and writes it with the given status.
// A render error becomes a gin error and no partial page is sent.
func Component(c *gin.Context, status int, comp templ.Component) {
	var buf bytes.Buffer
	if err := comp.Render(c.Request.Context(), &buf); err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
