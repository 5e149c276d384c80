package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

func (h *ProductHandler) GetFacets(c *fiber.Ctx) error {
	category := c.Query("category", h.defaultCategory)
	return respond(c, http.StatusOK, h.service.Facets(c.UserContext(), category))
}
