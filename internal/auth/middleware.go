package auth

import (
	"errors"
	"net/http"

	dom "Motiv/internal/domain"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const SessionCookieName = "session_id"

const contextKeySession = "session"

// SessionFromContext returns the session set by RequireSession.
func SessionFromContext(c *gin.Context) (dom.Session, bool) {
	v, ok := c.Get(contextKeySession)
	if !ok {
		return dom.Session{}, false
	}
	s, ok := v.(dom.Session)
	return s, ok
}

// RequireSession returns a middleware that loads the session named by the
// session cookie and puts it in context. If missing or expired, responds with 401.
func RequireSession(sessions Sessions, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		sess, err := sessions.Get(c.Request.Context(), sessionID)
		if err != nil {
			if !errors.Is(err, ErrNoSession) {
				log.Error("session lookup failed", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session lookup failed"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		c.Set(contextKeySession, sess)
		c.Next()
	}
}
