package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	apierrors "github.com/narender/cellar-store/common/apierrors"
	"github.com/narender/cellar-store/common/telemetry/attributes"
	"github.com/narender/cellar-store/common/telemetry/metric"
	commontrace "github.com/narender/cellar-store/common/telemetry/trace"
	"github.com/narender/cellar-store/storefront-service/src/catalog"
)

func (s *productService) GetProduct(ctx context.Context, id string) (detail ProductDetail, appErr *apierrors.AppError) {
	start := time.Now()
	ctx, span := commontrace.StartSpan(ctx, attributes.ProductIDKey.String(id))
	defer func() {
		var telemetryErr error
		if appErr != nil {
			telemetryErr = appErr
		}
		metric.RecordOperationMetrics(ctx, "service", "GetProduct", start, telemetryErr)
		commontrace.EndSpan(span, &telemetryErr, commontrace.BusinessAwareStatusMapper)
	}()

	product, ok := s.catalog.Get(id)
	if !ok {
		s.logger.WarnContext(ctx, "Product not found",
			slog.String("component", "product_service"),
			slog.String("product_id", id))
		appErr = apierrors.NewBusinessError(apierrors.ErrCodeProductNotFound,
			fmt.Sprintf("Product with ID '%s' not found", id), nil)
		return ProductDetail{}, appErr
	}

	detail = ProductDetail{
		Product: product,
		Related: s.catalog.Related(id, catalog.MaxRelated),
	}
	span.SetAttributes(
		attributes.ProductCategoryKey.String(product.Category),
		attributes.ProductCountKey.Int(len(detail.Related)),
	)

	s.logger.DebugContext(ctx, "Product detail assembled",
		slog.String("component", "product_service"),
		slog.String("product_id", id),
		slog.Int("related_count", len(detail.Related)))
	return detail, nil
}
