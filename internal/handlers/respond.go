package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"Motiv/internal/auth"
	dom "Motiv/internal/domain"
	"Motiv/internal/goalsort"
	"Motiv/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Cookies describes the session cookie.
type Cookies struct {
	MaxAge time.Duration
	Secure bool
}

func (ck Cookies) set(c *gin.Context, sessionID string) {
	c.SetCookie(auth.SessionCookieName, sessionID, int(ck.MaxAge/time.Second), "/", "", ck.Secure, true)
}

func (ck Cookies) clear(c *gin.Context) {
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", ck.Secure, true)
}

// Responder writes service errors as JSON. A rejected backend token ends the
// browser session too.
type Responder struct {
	sessions auth.Sessions
	cookies  Cookies
	log      *zap.Logger
}

func NewResponder(sessions auth.Sessions, cookies Cookies, log *zap.Logger) *Responder {
	return &Responder{sessions: sessions, cookies: cookies, log: log}
}

func (r *Responder) fail(c *gin.Context, err error) {
	code, msg := http.StatusInternalServerError, "internal error"
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		r.endSession(c)
		code, msg = http.StatusUnauthorized, "session expired, sign in again"
	case errors.Is(err, service.ErrInvalidCredentials):
		code, msg = http.StatusUnauthorized, err.Error()
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, goalsort.ErrUnknownKey),
		errors.Is(err, goalsort.ErrUnknownDirection),
		errors.Is(err, goalsort.ErrUnknownList):
		code, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrNotFound):
		code, msg = http.StatusNotFound, "not found"
	case errors.Is(err, service.ErrNotSupervisor):
		code, msg = http.StatusForbidden, err.Error()
	case errors.Is(err, service.ErrAlreadyDecided),
		errors.Is(err, service.ErrWindowNotOpen),
		errors.Is(err, service.ErrWindowClosed):
		code, msg = http.StatusConflict, err.Error()
	case errors.Is(err, service.ErrRulesUnavailable):
		code, msg = http.StatusServiceUnavailable, service.ErrRulesUnavailable.Error()
	case errors.Is(err, service.ErrUnavailable):
		code, msg = http.StatusBadGateway, service.ErrUnavailable.Error()
	}

	if code >= http.StatusInternalServerError {
		r.log.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Int("status", code),
			zap.Error(err),
		)
	}
	c.JSON(code, gin.H{"error": msg})
}

func (r *Responder) badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (r *Responder) endSession(c *gin.Context) {
	if sess, ok := auth.SessionFromContext(c); ok && sess.ID != "" {
		if err := r.sessions.Delete(c.Request.Context(), sess.ID); err != nil {
			r.log.Warn("drop rejected session", zap.Error(err))
		}
	}
	r.cookies.clear(c)
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// mustSession returns the session put in context by auth.RequireSession.
func mustSession(c *gin.Context) (sess dom.Session, ok bool) {
	sess, ok = auth.SessionFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
	}
	return sess, ok
}
