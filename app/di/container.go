package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"cognito-auth-service/app/config"
	"cognito-auth-service/app/driver/cognito"
	"cognito-auth-service/app/driver/postgres"
	"cognito-auth-service/app/gateway"
	"cognito-auth-service/app/port"
	"cognito-auth-service/app/rest"
	"cognito-auth-service/app/usecase"
	"cognito-auth-service/app/utils/validator"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB            *postgres.DB
	CognitoClient *cognito.Client

	// Repositories
	AuditRepo port.AuditRepository

	// Gateways
	AuthGateway port.AuthGateway

	// Usecases
	AuthUsecase port.AuthUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	// Initialize drivers
	var err error

	// Initialize database connection
	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Cognito client
	container.CognitoClient, err = cognito.NewClient(ctx, cfg, logger)
	if err != nil {
		container.DB.Close()
		return nil, fmt.Errorf("failed to initialize Cognito client: %w", err)
	}

	// Initialize repositories
	container.AuditRepo = postgres.NewAuditRepository(container.DB.Pool(), logger)

	// Initialize gateways
	cognitoAdapter := cognito.NewAdapter(container.CognitoClient, logger)
	container.AuthGateway = gateway.NewAuthGateway(cognitoAdapter, logger)

	// Initialize usecases
	requestValidator := validator.New(cfg.AcceptedRoles)
	container.AuthUsecase = usecase.NewAuthUseCase(container.AuthGateway, container.AuditRepo, requestValidator, logger)

	logger.Info("Container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:      c.Logger,
		AuthUsecase: c.AuthUsecase,
		AuditRepo:   c.AuditRepo,
		DBChecker:   c.DB,
		EnableDebug: c.Config.LogLevel == "debug",
	}

	router := rest.NewRouter(routerConfig)

	c.Logger.Info("Full API router created")
	return router
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}

	// The Cognito client holds no connections that need explicit cleanup

	c.Logger.Info("Container closed successfully")
	return nil
}
