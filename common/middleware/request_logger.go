package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

// LoggingConfig holds configuration options for the request logger.
type LoggingConfig struct {
	Logger    *slog.Logger
	SkipPaths []string
}

func DefaultLoggingConfig(logger *slog.Logger) LoggingConfig {
	return LoggingConfig{
		Logger:    logger,
		SkipPaths: []string{"/health"},
	}
}

// RequestLogger logs one line per request, at warn for 4xx and error for 5xx.
// It must run after the error handler has written the response status, so it
// calls the app's ErrorHandler itself when a handler returns an error.
func RequestLogger(cfg LoggingConfig) fiber.Handler {
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		if _, ok := skip[c.Path()]; ok {
			return c.Next()
		}

		start := time.Now()
		path := c.Path()
		method := c.Method()

		chainErr := c.Next()
		if chainErr != nil {
			if herr := c.App().ErrorHandler(c, chainErr); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		statusCode := c.Response().StatusCode()
		attrs := []slog.Attr{
			slog.String("method", method),
			slog.String("path", path),
			slog.String("query", string(c.Request().URI().QueryString())),
			slog.Int("status_code", statusCode),
			slog.Duration("duration", time.Since(start)),
			slog.String("ip", c.IP()),
			slog.String("user_agent", c.Get(fiber.HeaderUserAgent)),
			slog.String("request_id", RequestIDFrom(c)),
		}

		level := slog.LevelInfo
		switch {
		case statusCode >= 500:
			level = slog.LevelError
		case statusCode >= 400:
			level = slog.LevelWarn
		}
		cfg.Logger.LogAttrs(c.UserContext(), level, "Request completed", attrs...)

		return nil
	}
}
