package http

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/narender/cellar-store/common/middleware"
)

// AppConfig holds configuration for the Fiber app
type AppConfig struct {
	Name             string
	Logger           *slog.Logger
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	BodyLimit        int
	MiddlewareConfig MiddlewareConfig
}

// DefaultAppConfig returns default app configuration
func DefaultAppConfig(name string, logger *slog.Logger) AppConfig {
	return AppConfig{
		Name:             name,
		Logger:           logger,
		ReadTimeout:      15 * time.Second,
		WriteTimeout:     15 * time.Second,
		IdleTimeout:      60 * time.Second,
		BodyLimit:        64 * 1024,
		MiddlewareConfig: DefaultMiddlewareConfig(),
	}
}

// NewApp creates a Fiber app with the standard error handler and middleware
// stack installed. Routes are registered by the caller.
func NewApp(cfg AppConfig) *fiber.App {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.Name,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           cfg.IdleTimeout,
		BodyLimit:             cfg.BodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(cfg.Logger),
	})

	RegisterMiddleware(app, cfg.Name, cfg.Logger, cfg.MiddlewareConfig)
	return app
}
