package catalogRepo

import (
	"context"
	"time"

	"sewakit/database"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	dbName             = "sewakit"
	assetsCollection   = "assets"
	servicesCollection = "services"
)

// MongoCatalogRepo is the MongoDB implementation of CatalogRepository.
type MongoCatalogRepo struct {
	assets   *mongo.Collection
	services *mongo.Collection
}

// NewMongoCatalogRepo creates a repository bound to the catalog collections.
func NewMongoCatalogRepo() *MongoCatalogRepo {
	db := database.MongoClient.Database(dbName)
	return &MongoCatalogRepo{
		assets:   db.Collection(assetsCollection),
		services: db.Collection(servicesCollection),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
