package attributes

import (
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

var (
	ExceptionMessageKey = semconv.ExceptionMessageKey
	ExceptionTypeKey    = semconv.ExceptionTypeKey

	DBFilePathKey = attribute.Key("db.file.path")

	ProductIDKey       = attribute.Key("app.product.id")
	ProductCountKey    = attribute.Key("app.products.count")
	ProductCategoryKey = attribute.Key("app.product.category")

	CatalogQueryKey   = attribute.Key("app.catalog.query")
	CatalogSortKey    = attribute.Key("app.catalog.sort")
	CatalogPageKey    = attribute.Key("app.catalog.page")
	CatalogTotalKey   = attribute.Key("app.catalog.total")
	CatalogHasMoreKey = attribute.Key("app.catalog.has_more")

	CartQuantityKey = attribute.Key("app.cart.quantity")
	CartCountKey    = attribute.Key("app.cart.count")
)
