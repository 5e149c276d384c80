package repositories

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"time"

	apierrors "github.com/narender/cellar-store/common/apierrors"
	"github.com/narender/cellar-store/common/telemetry/attributes"
	"github.com/narender/cellar-store/common/telemetry/metric"
	commontrace "github.com/narender/cellar-store/common/telemetry/trace"
	"github.com/narender/cellar-store/storefront-service/src/catalog"
	"github.com/narender/cellar-store/storefront-service/src/models"
)

func (r *productRepository) LoadCatalog(ctx context.Context) (c *catalog.Catalog, appErr *apierrors.AppError) {
	start := time.Now()
	ctx, span := commontrace.StartSpan(ctx, attributes.DBFilePathKey.String(r.database.FilePath()))
	defer func() {
		var telemetryErr error
		if appErr != nil {
			telemetryErr = appErr
		}
		metric.RecordOperationMetrics(ctx, "repository", "LoadCatalog", start, telemetryErr)
		commontrace.EndSpan(span, &telemetryErr, nil)
	}()

	r.logger.InfoContext(ctx, "Loading product catalog",
		slog.String("component", "product_repository"),
		slog.String("operation", "load_catalog"),
		slog.String("file_path", r.database.FilePath()))

	var products []models.Product
	if err := r.database.Read(ctx, &products); err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			appErr = apierrors.NewApplicationError(apierrors.ErrCodeDatabaseAccess, "Failed to read product catalog", err).
				WithContext("file_path", r.database.FilePath())
		} else {
			appErr = apierrors.NewApplicationError(apierrors.ErrCodeMalformedData, "Product catalog is not valid JSON", err).
				WithContext("file_path", r.database.FilePath())
		}
		r.logger.ErrorContext(ctx, "Failed to load product catalog",
			slog.String("component", "product_repository"),
			slog.String("error_code", appErr.Code),
			slog.Any("error", err))
		return nil, appErr
	}

	c, err := catalog.New(products)
	if err != nil {
		code := apierrors.ErrCodeInvalidProductData
		if errors.Is(err, catalog.ErrDuplicateID) {
			code = apierrors.ErrCodeDuplicateProductID
		}
		appErr = apierrors.NewBusinessError(code, "Product catalog failed validation", err)
		r.logger.ErrorContext(ctx, "Product catalog failed validation",
			slog.String("component", "product_repository"),
			slog.String("error_code", code),
			slog.Any("error", err))
		return nil, appErr
	}

	span.SetAttributes(attributes.ProductCountKey.Int(c.Len()))
	r.logger.InfoContext(ctx, "Product catalog loaded",
		slog.String("component", "product_repository"),
		slog.Int("product_count", c.Len()))
	return c, nil
}
