package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	ctx := c.UserContext()
	productID := c.Params("productId")

	h.logger.DebugContext(ctx, "Fetching product detail",
		slog.String("component", "product_handler"),
		slog.String("product_id", productID))

	detail, appErr := h.service.GetProduct(ctx, productID)
	if appErr != nil {
		return appErr
	}

	return respond(c, http.StatusOK, productDetailView{
		productView: newProductView(detail.Product),
		Related:     newProductViews(detail.Related),
	})
}
