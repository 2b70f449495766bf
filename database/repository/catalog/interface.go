package catalogRepo

import "sewakit/models"

// CatalogRepository defines read access to the rental catalog. The catalog is
// owned by the rental platform; this service only ever reads it.
type CatalogRepository interface {
	// GetAssets retrieves all asset documents.
	GetAssets() ([]models.Asset, error)
	// GetServices retrieves all service documents.
	GetServices() ([]models.Service, error)
	// GetAssetByID retrieves a single asset by its unique ID.
	GetAssetByID(id string) (*models.Asset, error)
	// GetServiceByID retrieves a single service by its unique ID.
	GetServiceByID(id string) (*models.Service, error)
}
