package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pier41/crabhouse/internal/domain/models"
	"github.com/pier41/crabhouse/internal/service/auth"
)

// SessionCookieName is the cookie carrying the logged-in staff name.
const SessionCookieName = "session"

// AuthHandler exposes the PIN login flow.
type AuthHandler struct {
	svc    *auth.Service
	secure bool
	logger *zap.Logger
}

// NewAuthHandler constructs the auth HTTP adapter. secure controls the
// cookie's Secure flag and should be true behind TLS.
func NewAuthHandler(svc *auth.Service, secure bool, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{svc: svc, secure: secure, logger: logger}
}

// Login validates the submitted PIN and issues the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid login payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "a four digit pin is required"})
		return
	}

	name, err := h.svc.Login(req.PIN)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidPIN) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid pin"})
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	maxAge := h.svc.SessionTTLHours() * 3600
	c.SetCookie(SessionCookieName, name, maxAge, "/", "", h.secure, true)
	c.JSON(http.StatusOK, gin.H{"name": name})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", h.secure, true)
	c.Status(http.StatusNoContent)
}

// Session reports who is logged in.
func (h *AuthHandler) Session(c *gin.Context) {
	name, err := c.Cookie(SessionCookieName)
	if err != nil || name == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": name})
}
