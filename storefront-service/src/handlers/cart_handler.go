package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	apierrors "github.com/narender/cellar-store/common/apierrors"
	apirequests "github.com/narender/cellar-store/common/apirequests"
	"github.com/narender/cellar-store/common/validator"
)

func (h *ProductHandler) GetCart(c *fiber.Ctx) error {
	return respond(c, http.StatusOK, cartView{Count: h.service.CartCount(c.UserContext())})
}

// AddToCartItem adds quantity (default 1) of a product to the cart and
// returns the new item count.
func (h *ProductHandler) AddToCartItem(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req apirequests.AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WarnContext(ctx, "Invalid add-to-cart request body",
			slog.String("component", "product_handler"),
			slog.String("error", err.Error()))
		return apierrors.NewApplicationError(apierrors.ErrCodeRequestValidation, "Invalid request body format", err)
	}
	req.Normalize()

	if appErr := validator.ValidateRequest(&req); appErr != nil {
		h.logger.WarnContext(ctx, "Add-to-cart request failed validation",
			slog.String("component", "product_handler"),
			slog.String("validator_error", appErr.Message))
		return appErr
	}

	count, appErr := h.service.AddToCart(ctx, req.ProductID, req.Quantity)
	if appErr != nil {
		return appErr
	}

	return respond(c, http.StatusOK, cartView{
		Count:     count,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
}
