package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/narender/cellar-store/common/telemetry/attributes"
	"github.com/narender/cellar-store/common/telemetry/metric"
	commontrace "github.com/narender/cellar-store/common/telemetry/trace"
	"github.com/narender/cellar-store/storefront-service/src/catalog"
)

func (s *productService) Search(ctx context.Context, f catalog.Filters) catalog.Result {
	start := time.Now()
	query := f.Encode()
	ctx, span := commontrace.StartSpan(ctx,
		attributes.CatalogQueryKey.String(query),
		attributes.CatalogSortKey.String(string(f.Sort)),
		attributes.CatalogPageKey.Int(f.Page),
		attributes.ProductCategoryKey.String(f.Category),
	)
	defer func() {
		metric.RecordOperationMetrics(ctx, "service", "Search", start, nil)
		commontrace.EndSpan(span, nil, nil)
	}()

	res := s.catalog.Search(f, s.pageSize)

	span.SetAttributes(
		attributes.CatalogTotalKey.Int(res.Total),
		attributes.CatalogHasMoreKey.Bool(res.HasMore),
		attributes.ProductCountKey.Int(len(res.Products)),
	)
	metric.RecordSearch(ctx, res.Total, f.Category, string(f.Sort))

	s.logger.InfoContext(ctx, "Catalog search completed",
		slog.String("component", "product_service"),
		slog.String("operation", "search"),
		slog.String("query", query),
		slog.Int("total", res.Total),
		slog.Int("returned", len(res.Products)),
		slog.Bool("has_more", res.HasMore))

	return res
}
