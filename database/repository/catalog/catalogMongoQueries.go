package catalogRepo

import (
	"fmt"
	"time"

	"sewakit/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAssets retrieves all asset documents in insertion order.
func (r *MongoCatalogRepo) GetAssets() ([]models.Asset, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "code", Value: 1}})
	cursor, err := r.assets.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer cursor.Close(ctx)

	var assets []models.Asset
	if err := cursor.All(ctx, &assets); err != nil {
		return nil, fmt.Errorf("failed to decode assets: %w", err)
	}
	return assets, nil
}

// GetServices retrieves all service documents in insertion order.
func (r *MongoCatalogRepo) GetServices() ([]models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "code", Value: 1}})
	cursor, err := r.services.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

// GetAssetByID retrieves a single asset by its unique ID.
func (r *MongoCatalogRepo) GetAssetByID(id string) (*models.Asset, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var asset models.Asset
	if err := r.assets.FindOne(ctx, bson.M{"id": id}).Decode(&asset); err != nil {
		return nil, fmt.Errorf("asset with id %s not found: %w", id, err)
	}
	return &asset, nil
}

// GetServiceByID retrieves a single service by its unique ID.
func (r *MongoCatalogRepo) GetServiceByID(id string) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var service models.Service
	if err := r.services.FindOne(ctx, bson.M{"id": id}).Decode(&service); err != nil {
		return nil, fmt.Errorf("service with id %s not found: %w", id, err)
	}
	return &service, nil
}
