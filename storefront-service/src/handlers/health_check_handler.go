package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

func (h *ProductHandler) HealthCheck(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "ok"})
}

// Status reports handler-level health including the loaded catalog size.
func (h *ProductHandler) Status(c *fiber.Ctx) error {
	ctx := c.UserContext()
	h.logger.DebugContext(ctx, "Status requested",
		slog.String("component", "product_handler"),
		slog.String("operation", "status"))

	return respond(c, http.StatusOK, fiber.Map{
		"status":    "ok",
		"service":   h.serviceName,
		"products":  h.service.CatalogSize(),
		"cartCount": h.service.CartCount(ctx),
	})
}
