package routes

import (
	"time"

	"github.com/daniiloleshchuk/checkbox-api/internal/config"
	"github.com/daniiloleshchuk/checkbox-api/internal/presentation/http/handler"
	"github.com/daniiloleshchuk/checkbox-api/internal/presentation/http/middleware"
	"github.com/daniiloleshchuk/checkbox-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth    *handler.AuthHandler
	Receipt *handler.ReceiptHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/token", h.Auth.Token)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Public shared receipt view, addressed by its opaque token
		v1.GET("/receipts/:public_token", h.Receipt.GetByPublicToken)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		protected.GET("/auth/me", h.Auth.GetProfile)

		protected.POST("/receipts", h.Receipt.Create)
		protected.GET("/receipts", h.Receipt.List)
		protected.POST("/receipts/:id/print", h.Receipt.Print)

		protected.GET("/printer/status", h.Receipt.PrinterStatus)
	}

	return router
}
