package services

import (
	"context"
	"log/slog"

	apierrors "github.com/narender/cellar-store/common/apierrors"
	"github.com/narender/cellar-store/storefront-service/src/cart"
	"github.com/narender/cellar-store/storefront-service/src/catalog"
	"github.com/narender/cellar-store/storefront-service/src/models"
)

type ProductService interface {
	Search(ctx context.Context, f catalog.Filters) catalog.Result
	GetProduct(ctx context.Context, id string) (ProductDetail, *apierrors.AppError)
	Facets(ctx context.Context, category string) catalog.Facets
	AddToCart(ctx context.Context, id string, quantity int) (count int, appErr *apierrors.AppError)
	CartCount(ctx context.Context) int
	CatalogSize() int
}

// ProductDetail is a product together with the products shown beside it.
type ProductDetail struct {
	Product models.Product
	Related []models.Product
}

type productService struct {
	catalog  *catalog.Catalog
	cart     *cart.Counter
	pageSize int
	logger   *slog.Logger
}

// NewProductService serves queries from c and records cart additions on
// counter. pageSize is the number of products per listing page.
func NewProductService(c *catalog.Catalog, counter *cart.Counter, pageSize int, logger *slog.Logger) ProductService {
	return &productService{
		catalog:  c,
		cart:     counter,
		pageSize: pageSize,
		logger:   logger,
	}
}

func (s *productService) CatalogSize() int {
	return s.catalog.Len()
}
