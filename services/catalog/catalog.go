package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"sewakit/models"
	"sewakit/utils"

	"go.uber.org/zap"
)

const catalogCacheKey = "catalog:merged"

// GetCatalog returns available items matching the query.
func (s *DefaultCatalogService) GetCatalog(query string) ([]models.CatalogItem, error) {
	items, err := s.loadCatalog()
	if err != nil {
		return nil, err
	}
	return Filter(items, query), nil
}

// GetItem returns a single catalog item, bypassing the merged cache so stock
// and status are current at selection time.
func (s *DefaultCatalogService) GetItem(itemID string, kind models.ItemKind) (*models.CatalogItem, error) {
	switch kind {
	case models.KindAsset:
		asset, err := s.Repo.GetAssetByID(itemID)
		if err != nil {
			return nil, err
		}
		item := asset.ToCatalogItem()
		return &item, nil
	case models.KindService:
		service, err := s.Repo.GetServiceByID(itemID)
		if err != nil {
			return nil, err
		}
		item := service.ToCatalogItem()
		return &item, nil
	default:
		return nil, fmt.Errorf("unknown item kind %q", kind)
	}
}

// loadCatalog returns the merged asset+service projection, served from the
// Redis cache when fresh.
func (s *DefaultCatalogService) loadCatalog() ([]models.CatalogItem, error) {
	ctx := context.Background()

	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, catalogCacheKey).Result(); err == nil {
			var items []models.CatalogItem
			if err := json.Unmarshal([]byte(data), &items); err == nil {
				return items, nil
			}
		}
	}

	assets, err := s.Repo.GetAssets()
	if err != nil {
		return nil, fmt.Errorf("failed to load assets: %w", err)
	}
	services, err := s.Repo.GetServices()
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}

	items := make([]models.CatalogItem, 0, len(assets)+len(services))
	for _, asset := range assets {
		items = append(items, asset.ToCatalogItem())
	}
	for _, service := range services {
		items = append(items, service.ToCatalogItem())
	}

	if s.Cache != nil {
		if data, err := json.Marshal(items); err == nil {
			if err := s.Cache.Set(ctx, catalogCacheKey, data, s.CacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache catalog", zap.Error(err))
			}
		}
	}
	return items, nil
}
