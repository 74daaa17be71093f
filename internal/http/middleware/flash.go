package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tarimvitrin.com/app/internal/http/flash"
	"tarimvitrin.com/app/pkg/view"
)

const flashKey = "vitrin.flash"

// FlashMiddleware consumes the flash cookie. A notice is shown once, so the
// cookie is expired on the same response even when it fails to verify.
func FlashMiddleware(codec *flash.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(codec.CookieName)
		if err != nil || raw == "" {
			c.Next()
			return
		}

		if f, err := codec.Decode(raw); err == nil {
			c.Set(flashKey, f)
		}
		writeFlashCookie(c, codec, "", -1)
		c.Next()
	}
}

// GetFlash returns the notice carried by this request, or nil.
func GetFlash(c *gin.Context) *view.Flash {
	v, ok := c.Get(flashKey)
	if !ok {
		return nil
	}
	f, _ := v.(*view.Flash)
	return f
}

// SetFlashCookie queues f for the next page view. Encoding failures drop the
// notice silently; the redirect still happens.
func SetFlashCookie(c *gin.Context, codec *flash.Codec, f view.Flash) {
	if val, err := codec.Encode(f); err == nil {
		writeFlashCookie(c, codec, val, codec.CookieMaxAge())
	}
}

func writeFlashCookie(c *gin.Context, codec *flash.Codec, val string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(codec.CookieName, val, maxAge, "/", "", codec.Secure, true)
}
