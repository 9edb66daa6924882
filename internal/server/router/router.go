package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pier41/crabhouse/internal/server/handlers"
)

// Handlers groups the HTTP adapters the router wires up.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Dashboard *handlers.DashboardHandler
	Entries   *handlers.EntryHandler
	Export    *handlers.ExportHandler
}

// New wires the Gin engine with required routes and middlewares.
// Everything except login and the health probe sits behind the
// session cookie guard.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.POST("/api/login", h.Auth.Login)

	authed := r.Group("/api", sessionRequired())
	{
		authed.POST("/logout", h.Auth.Logout)
		authed.GET("/session", h.Auth.Session)

		authed.GET("/dashboard", h.Dashboard.Dashboard)
		authed.GET("/stock", h.Dashboard.Stock)
		authed.GET("/schedule/estimate", h.Dashboard.Estimate)

		authed.POST("/invoices", h.Entries.SubmitInvoices)
		authed.POST("/eod", h.Entries.SubmitEndOfDay)
		authed.POST("/weekly-breakdown", h.Entries.SubmitWeeklyBreakdown)

		authed.GET("/export/eod", h.Export.ExportEoD)
	}

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func sessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		name, err := c.Cookie(handlers.SessionCookieName)
		if err != nil || name == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		c.Next()
	}
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
