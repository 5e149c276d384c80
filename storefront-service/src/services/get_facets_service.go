package services

import (
	"context"
	"log/slog"

	"github.com/narender/cellar-store/common/telemetry/attributes"
	commontrace "github.com/narender/cellar-store/common/telemetry/trace"
	"github.com/narender/cellar-store/storefront-service/src/catalog"
)

func (s *productService) Facets(ctx context.Context, category string) catalog.Facets {
	ctx, span := commontrace.StartSpan(ctx, attributes.ProductCategoryKey.String(category))
	defer commontrace.EndSpan(span, nil, nil)

	facets := s.catalog.Facets(category)

	s.logger.DebugContext(ctx, "Facets built",
		slog.String("component", "product_service"),
		slog.String("category", category),
		slog.Int("regions", len(facets.Regions)),
		slog.Int("grapes", len(facets.Grapes)))
	return facets
}
