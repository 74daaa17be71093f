package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tarimvitrin.com/app/internal/http/flash"
	"tarimvitrin.com/app/internal/http/middleware"
	"tarimvitrin.com/app/pkg/view"
)

// RedirectWithFlash stores f in the flash cookie and redirects with 303 so
// the browser follows up with a GET.
func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, f *view.Flash) {
	if f != nil && f.Message != "" {
		middleware.SetFlashCookie(c, codec, *f)
	}
	c.Redirect(http.StatusSeeOther, location)
}
