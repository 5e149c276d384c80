package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/narender/cellar-store/storefront-service/src/catalog"
)

// SearchProducts decodes the query string into catalog filters and returns
// the matching page. The listing always paginates, starting at page 1.
func (h *ProductHandler) SearchProducts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	f := catalog.ParseRawQuery(string(c.Request().URI().QueryString()))
	if f.Category == "" {
		f.Category = h.defaultCategory
	}
	if f.Page == 0 {
		f.Page = 1
	}

	h.logger.DebugContext(ctx, "Listing products",
		slog.String("component", "product_handler"),
		slog.String("operation", "search_products"),
		slog.String("query", f.Encode()))

	res := h.service.Search(ctx, f)
	return respond(c, http.StatusOK, newSearchView(f, res))
}
