package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionCookie identifies an anonymous browser so its wishlist survives
	// page loads. There is no account behind it.
	SessionCookie = "carlet_session"

	// SessionKey is the gin context key holding the session id.
	SessionKey = "session"

	sessionMaxAge = 30 * 24 * 60 * 60 // seconds, matches the wishlist TTL
)

// Session assigns every visitor a stable anonymous session id via cookie and
// exposes it on the gin context.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, sid, sessionMaxAge, "/", "", false, true)
		}
		c.Set(SessionKey, sid)
		c.Next()
	}
}

// SessionID returns the session id set by Session.
func SessionID(c *gin.Context) string {
	if v, ok := c.Get(SessionKey); ok {
		if sid, ok := v.(string); ok {
			return sid
		}
	}
	return ""
}
