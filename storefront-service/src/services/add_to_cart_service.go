package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	apierrors "github.com/narender/cellar-store/common/apierrors"
	"github.com/narender/cellar-store/common/telemetry/attributes"
	"github.com/narender/cellar-store/common/telemetry/metric"
	commontrace "github.com/narender/cellar-store/common/telemetry/trace"
	"github.com/narender/cellar-store/storefront-service/src/cart"
)

func (s *productService) AddToCart(ctx context.Context, id string, quantity int) (count int, appErr *apierrors.AppError) {
	start := time.Now()
	ctx, span := commontrace.StartSpan(ctx,
		attributes.ProductIDKey.String(id),
		attributes.CartQuantityKey.Int(quantity),
	)
	defer func() {
		var telemetryErr error
		if appErr != nil {
			telemetryErr = appErr
		}
		metric.RecordOperationMetrics(ctx, "service", "AddToCart", start, telemetryErr)
		commontrace.EndSpan(span, &telemetryErr, commontrace.BusinessAwareStatusMapper)
	}()

	product, ok := s.catalog.Get(id)
	if !ok {
		appErr = apierrors.NewBusinessError(apierrors.ErrCodeProductNotFound,
			fmt.Sprintf("Product with ID '%s' not found", id), nil)
		return s.cart.Count(), appErr
	}

	if quantity > product.Inventory {
		s.logger.WarnContext(ctx, "Add to cart blocked - insufficient stock",
			slog.String("component", "product_service"),
			slog.String("product_id", id),
			slog.Int("requested", quantity),
			slog.Int("available", product.Inventory))
		appErr = apierrors.NewBusinessError(apierrors.ErrCodeInsufficientStock,
			fmt.Sprintf("Insufficient stock for product '%s'. Available: %d, Requested: %d", id, product.Inventory, quantity), nil).
			WithContext("available", product.Inventory).
			WithContext("requested", quantity)
		return s.cart.Count(), appErr
	}

	count, err := s.cart.Add(quantity)
	if err != nil {
		count = s.cart.Count()
		switch {
		case errors.Is(err, cart.ErrLimitExceeded):
			appErr = apierrors.NewBusinessError(apierrors.ErrCodeCartLimitExceeded,
				fmt.Sprintf("Cart cannot hold more than %d items", s.cart.Limit()), err)
		default:
			appErr = apierrors.NewApplicationError(apierrors.ErrCodeRequestValidation,
				"Quantity must be a positive number", err)
		}
		return count, appErr
	}

	span.SetAttributes(attributes.CartCountKey.Int(count))
	metric.RecordCartAdd(ctx, product.Category, quantity)

	s.logger.InfoContext(ctx, "Added to cart",
		slog.String("component", "product_service"),
		slog.String("operation", "add_to_cart"),
		slog.String("product_id", id),
		slog.Int("quantity", quantity),
		slog.Int("cart_count", count))
	return count, nil
}

func (s *productService) CartCount(ctx context.Context) int {
	count := s.cart.Count()
	s.logger.DebugContext(ctx, "Cart count read",
		slog.String("component", "product_service"),
		slog.Int("cart_count", count))
	return count
}
