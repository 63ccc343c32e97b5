package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"cognito-auth-service/app/port"
	"cognito-auth-service/app/rest/handlers"
	custommw "cognito-auth-service/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger      *slog.Logger
	AuthUsecase port.AuthUsecase
	AuditRepo   port.AuditRepository
	DBChecker   handlers.HealthChecker
	EnableDebug bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	// Create Echo instance
	e := echo.New()

	// Configure Echo
	e.HideBanner = true
	e.Debug = config.EnableDebug

	// Create handlers
	authHandler := handlers.NewAuthHandler(config.AuthUsecase, config.Logger)
	auditHandler := handlers.NewAuditHandler(config.AuditRepo, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.DBChecker, config.Logger)

	// Create security components
	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints
	health := v1.Group("/health")
	health.GET("", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Authentication endpoints. The service is stateless: every operation
	// carries its own credentials, so nothing here needs session middleware.
	auth := v1.Group("/auth")
	auth.POST("/signup", authHandler.SignUp)
	auth.POST("/verify", authHandler.Verify)
	auth.POST("/resend-code", authHandler.ResendCode)
	auth.GET("/user", authHandler.GetUser)
	auth.POST("/signin", authHandler.SignIn)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/confirm-forgot-password", authHandler.ConfirmForgotPassword)
	auth.POST("/change-password", authHandler.ChangePassword)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/logout", authHandler.Logout)

	// Audit trail endpoints
	audit := v1.Group("/audit")
	audit.GET("/events", auditHandler.RecentEvents)

	return e
}
