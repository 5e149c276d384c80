package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	apiresponses "github.com/narender/cellar-store/common/apiresponses"
	"github.com/narender/cellar-store/common/middleware"
	"github.com/narender/cellar-store/storefront-service/src/services"
)

type ProductHandler struct {
	service         services.ProductService
	logger          *slog.Logger
	serviceName     string
	defaultCategory string
}

// NewProductHandler creates the storefront handlers. defaultCategory applies
// to listings and facets when the request does not name a category.
func NewProductHandler(svc services.ProductService, serviceName, defaultCategory string, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service:         svc,
		logger:          logger,
		serviceName:     serviceName,
		defaultCategory: defaultCategory,
	}
}

// RegisterRoutes mounts every storefront route on app.
func (h *ProductHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/health", h.HealthCheck)
	app.Get("/status", h.Status)

	app.Get("/products", h.SearchProducts)
	app.Get("/products/:productId", h.GetProduct)
	app.Get("/facets", h.GetFacets)

	app.Get("/cart", h.GetCart)
	app.Post("/cart/items", h.AddToCartItem)
}

func respond(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(apiresponses.NewSuccessResponse(data).WithRequestID(middleware.RequestIDFrom(c)))
}
