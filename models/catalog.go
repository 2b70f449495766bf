package models

import "math"

// ItemKind discriminates the two bookable catalog kinds.
type ItemKind string

const (
	KindAsset   ItemKind = "asset"
	KindService ItemKind = "service"
)

// Asset statuses as stored in the catalog.
const (
	AssetStatusAvailable   = "available"
	AssetStatusRented      = "rented"
	AssetStatusMaintenance = "maintenance"
)

// UnlimitedQuantity is the sentinel max quantity for items without a stock
// constraint (services).
const UnlimitedQuantity = math.MaxInt32

// Asset represents a physical piece of equipment rented per day.
type Asset struct {
	ID         string `bson:"id" json:"id"`
	Code       string `bson:"code" json:"code"`
	Name       string `bson:"name" json:"name"`
	CategoryID string `bson:"category_id,omitempty" json:"categoryId,omitempty"`
	DailyRate  int64  `bson:"daily_rate" json:"dailyRate"` // whole Rupiah per day
	Stock      int    `bson:"stock" json:"stock"`
	Status     string `bson:"status" json:"status"`
}

// Service represents a labor/service offering billed per unit.
type Service struct {
	ID         string `bson:"id" json:"id"`
	Code       string `bson:"code" json:"code"`
	Name       string `bson:"name" json:"name"`
	CategoryID string `bson:"category_id,omitempty" json:"categoryId,omitempty"`
	UnitRate   int64  `bson:"unit_rate" json:"unitRate"` // whole Rupiah per unit
	IsActive   bool   `bson:"is_active" json:"isActive"`
}

// CatalogItem is the uniform projection of an Asset or Service consumed by
// the wizard. Availability and max quantity are resolved at projection time.
type CatalogItem struct {
	ID          string   `json:"id"`
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	CategoryID  string   `json:"categoryId,omitempty"`
	Kind        ItemKind `json:"kind"`
	UnitPrice   int64    `json:"unitPrice"`
	Available   bool     `json:"available"`
	MaxQuantity int      `json:"maxQuantity"`
}

// ToCatalogItem projects an asset into the uniform catalog shape.
func (a Asset) ToCatalogItem() CatalogItem {
	return CatalogItem{
		ID:          a.ID,
		Code:        a.Code,
		Name:        a.Name,
		CategoryID:  a.CategoryID,
		Kind:        KindAsset,
		UnitPrice:   a.DailyRate,
		Available:   a.Status == AssetStatusAvailable,
		MaxQuantity: a.Stock,
	}
}

// ToCatalogItem projects a service into the uniform catalog shape.
func (s Service) ToCatalogItem() CatalogItem {
	return CatalogItem{
		ID:          s.ID,
		Code:        s.Code,
		Name:        s.Name,
		CategoryID:  s.CategoryID,
		Kind:        KindService,
		UnitPrice:   s.UnitRate,
		Available:   s.IsActive,
		MaxQuantity: UnlimitedQuantity,
	}
}
