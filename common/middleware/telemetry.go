package middleware

import (
	otelfiber "github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
)

// OtelMiddleware starts a server span per request, skipping liveness probes.
func OtelMiddleware(serviceName string) fiber.Handler {
	return otelfiber.Middleware(
		otelfiber.WithServerName(serviceName),
		otelfiber.WithNext(func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		}),
	)
}
