package repositories

import (
	"context"
	"log/slog"

	apierrors "github.com/narender/cellar-store/common/apierrors"
	db "github.com/narender/cellar-store/common/db"
	"github.com/narender/cellar-store/storefront-service/src/catalog"
)

// ProductRepository loads the product catalog from storage.
type ProductRepository interface {
	LoadCatalog(ctx context.Context) (*catalog.Catalog, *apierrors.AppError)
}

type productRepository struct {
	database *db.FileDatabase
	logger   *slog.Logger
}

// NewProductRepository creates a repository reading the catalog through database.
func NewProductRepository(database *db.FileDatabase, logger *slog.Logger) ProductRepository {
	return &productRepository{
		database: database,
		logger:   logger,
	}
}
