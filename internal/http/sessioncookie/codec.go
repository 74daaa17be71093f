package sessioncookie

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tarimvitrin.com/app/internal/http/cookie"
)

// Codec reads and writes the signed cookie naming a browser's view session.
type Codec struct {
	signer     cookie.Signer
	CookieName string
	Secure     bool
	TTL        time.Duration
}

func New(secret []byte, name string, secure bool, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &Codec{signer: cookie.Signer{Secret: secret}, CookieName: name, Secure: secure, TTL: ttl}
}

// value format: sessionID.base64(hmac(sessionID))
func (c *Codec) Encode(id string) string { return c.signer.Seal(id) }

func (c *Codec) Decode(v string) (string, error) {
	id, err := c.signer.Open(v)
	if err != nil {
		return "", err
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", cookie.ErrInvalid
	}
	return id, nil
}

// Get returns the session ID carried by the request, clearing a cookie that
// fails verification.
func (c *Codec) Get(ctx *gin.Context) (string, bool) {
	v, err := ctx.Cookie(c.CookieName)
	if err != nil || v == "" {
		return "", false
	}
	id, err := c.Decode(v)
	if err != nil {
		c.Clear(ctx)
		return "", false
	}
	return id, true
}

func (c *Codec) Set(ctx *gin.Context, id string) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, c.Encode(id), int(c.TTL.Seconds()), "/", "", c.Secure, true)
}

func (c *Codec) Clear(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, "", -1, "/", "", c.Secure, true)
}
