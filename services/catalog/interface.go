package catalog

import (
	"time"

	catalogRepo "sewakit/database/repository/catalog"
	"sewakit/models"

	"github.com/go-redis/redis/v8"
)

// CatalogService exposes the bookable catalog to the wizard.
type CatalogService interface {
	// GetCatalog returns available items matching the query, assets first,
	// in the catalog's own order.
	GetCatalog(query string) ([]models.CatalogItem, error)
	// GetItem returns a single catalog item by ID and kind.
	GetItem(itemID string, kind models.ItemKind) (*models.CatalogItem, error)
}

// DefaultCatalogService implements CatalogService over the platform's
// catalog collections, with a short-lived Redis cache of the merged
// projection.
type DefaultCatalogService struct {
	Repo     catalogRepo.CatalogRepository
	Cache    *redis.Client
	CacheTTL time.Duration
}
