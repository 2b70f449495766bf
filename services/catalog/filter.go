package catalog

import (
	"strings"

	"sewakit/models"
)

// Filter returns the available items whose name or code contains the query.
// Matching is case-insensitive on the trimmed query; an empty query keeps
// every available item. Input order is preserved.
func Filter(items []models.CatalogItem, query string) []models.CatalogItem {
	q := strings.ToLower(strings.TrimSpace(query))
	filtered := make([]models.CatalogItem, 0, len(items))
	for _, item := range items {
		if !item.Available {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(item.Name), q) &&
			!strings.Contains(strings.ToLower(item.Code), q) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}
