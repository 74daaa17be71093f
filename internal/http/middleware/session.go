package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tarimvitrin.com/app/internal/http/sessioncookie"
)

const CtxKeySessionID = "view_session_id"

// ViewSession makes sure every page request belongs to a view session. A
// missing or forged cookie starts a new one.
func ViewSession(codec *sessioncookie.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := codec.Get(c)
		if !ok {
			id = uuid.NewString()
			codec.Set(c, id)
		}
		c.Set(CtxKeySessionID, id)
		c.Next()
	}
}

func SessionID(c *gin.Context) string {
	if v, ok := c.Get(CtxKeySessionID); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
