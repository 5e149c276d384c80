package http

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/narender/cellar-store/common/middleware"
)

// MiddlewareConfig toggles the pieces of the standard middleware stack.
type MiddlewareConfig struct {
	EnableOTel     bool
	EnableLogger   bool
	EnableCORS     bool
	EnableRecovery bool
	SkipLogPaths   []string
	CORSConfig     cors.Config
}

func DefaultMiddlewareConfig() MiddlewareConfig {
	return MiddlewareConfig{
		EnableOTel:     true,
		EnableLogger:   true,
		EnableCORS:     true,
		EnableRecovery: true,
		SkipLogPaths:   []string{"/health"},
		CORSConfig: cors.Config{
			AllowOrigins: "*",
			AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		},
	}
}

// RegisterMiddleware installs, outermost first: request id, CORS, tracing,
// request logging, panic recovery.
func RegisterMiddleware(app *fiber.App, serviceName string, logger *slog.Logger, cfg MiddlewareConfig) {
	app.Use(middleware.RequestID())

	if cfg.EnableCORS {
		app.Use(cors.New(cfg.CORSConfig))
	}
	if cfg.EnableOTel {
		app.Use(middleware.OtelMiddleware(serviceName))
	}
	if cfg.EnableLogger {
		lc := middleware.DefaultLoggingConfig(logger)
		if cfg.SkipLogPaths != nil {
			lc.SkipPaths = cfg.SkipLogPaths
		}
		app.Use(middleware.RequestLogger(lc))
	}
	if cfg.EnableRecovery {
		app.Use(middleware.RecoverMiddleware(logger))
	}
}
