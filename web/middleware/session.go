package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionCookieName = "insight_copilot_session"
const CookieMaxAge = 30 * 24 * 60 * 60 // 30 days

// SessionMiddleware assigns each browser a stable session id via cookie.
// Chat state is held in memory keyed by this id, so no store round trip is
// needed here.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookieName)
		var sessionID uuid.UUID

		if err == http.ErrNoCookie {
			sessionID = uuid.New()
			c.SetCookie(SessionCookieName, sessionID.String(), CookieMaxAge, "/", "", false, true)
		} else if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse session cookie"})
			return
		} else {
			sessionID, err = uuid.Parse(cookie)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
				return
			}
		}

		c.Set("sessionID", sessionID)
		c.Next()
	}
}
