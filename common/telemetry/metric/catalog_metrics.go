package metric

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	SearchResultsMetric    = "storefront.search.results"
	CartItemsMetric        = "storefront.cart.items"
	ProductInventoryMetric = "product.inventory.count"
)

var (
	searchResults metric.Int64Histogram
	cartItems     metric.Int64Counter
)

func init() {
	var err error

	searchResults, err = meter.Int64Histogram(
		SearchResultsMetric,
		metric.WithDescription("Number of catalog products matching a search before pagination"),
		metric.WithUnit("{product}"),
	)
	if err != nil {
		slog.Error("Failed to initialize search results histogram", slog.Any("error", err))
	}

	cartItems, err = meter.Int64Counter(
		CartItemsMetric,
		metric.WithDescription("Items added to the cart"),
		metric.WithUnit("{item}"),
	)
	if err != nil {
		slog.Error("Failed to initialize cart items counter", slog.Any("error", err))
	}
}

// RecordSearch records the match count of one catalog search.
func RecordSearch(ctx context.Context, total int, category, sort string) {
	if searchResults == nil {
		return
	}
	searchResults.Record(ctx, int64(total), metric.WithAttributes(
		attribute.String("app.catalog.category", category),
		attribute.String("app.catalog.sort", sort),
	))
}

// RecordCartAdd records quantity items added for productID's category.
func RecordCartAdd(ctx context.Context, category string, quantity int) {
	if cartItems == nil {
		return
	}
	cartItems.Add(ctx, int64(quantity), metric.WithAttributes(
		attribute.String("app.product.category", category),
	))
}

// InventorySnapshot reports current inventory keyed by product id.
type InventorySnapshot func() map[string]int

// RegisterInventoryGauge exposes inventory per product as an observable gauge.
// The returned registration must be unregistered on shutdown.
func RegisterInventoryGauge(snapshot InventorySnapshot) (metric.Registration, error) {
	gauge, err := meter.Int64ObservableGauge(
		ProductInventoryMetric,
		metric.WithDescription("Current inventory for each catalog product"),
		metric.WithUnit("{item}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s gauge: %w", ProductInventoryMetric, err)
	}

	reg, err := meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		for id, count := range snapshot() {
			o.ObserveInt64(gauge, int64(count), metric.WithAttributes(attribute.String("app.product.id", id)))
		}
		return nil
	}, gauge)
	if err != nil {
		return nil, fmt.Errorf("failed to register %s callback: %w", ProductInventoryMetric, err)
	}
	return reg, nil
}
