package wizard

import (
	"fmt"

	"sewakit/models"
)

// AddItem merges a catalog item into the selection. An existing entry has its
// quantity incremented by one, clamped at the item's max; adding at the max
// is a no-op. A new entry starts at quantity one and is refused when the item
// has no bookable stock.
func AddItem(items []models.SelectedItem, item models.CatalogItem) []models.SelectedItem {
	for i := range items {
		if items[i].ItemID == item.ID && items[i].Kind == item.Kind {
			if items[i].Quantity < items[i].MaxQuantity {
				items[i].Quantity++
			}
			return items
		}
	}
	if item.MaxQuantity < 1 {
		return items
	}
	return append(items, models.SelectedItem{
		ItemID:      item.ID,
		Kind:        item.Kind,
		Name:        item.Name,
		UnitPrice:   item.UnitPrice,
		Quantity:    1,
		MaxQuantity: item.MaxQuantity,
	})
}

// SetQuantity sets an entry's quantity directly. A quantity of zero or less
// removes the entry; a quantity above the item's max is rejected. Setting the
// quantity of an absent entry is a no-op.
func SetQuantity(items []models.SelectedItem, itemID string, kind models.ItemKind, quantity int) ([]models.SelectedItem, error) {
	if quantity <= 0 {
		return RemoveItem(items, itemID, kind), nil
	}
	for i := range items {
		if items[i].ItemID == itemID && items[i].Kind == kind {
			if quantity > items[i].MaxQuantity {
				return items, NewQuantityExceedsStockError(
					fmt.Sprintf("only %d unit(s) of %s available", items[i].MaxQuantity, items[i].Name))
			}
			items[i].Quantity = quantity
			return items, nil
		}
	}
	return items, nil
}

// RemoveItem deletes the entry for the given item. Removal is idempotent.
func RemoveItem(items []models.SelectedItem, itemID string, kind models.ItemKind) []models.SelectedItem {
	for i := range items {
		if items[i].ItemID == itemID && items[i].Kind == kind {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}

// QuantityOf returns the selected quantity for an item, zero when absent.
func QuantityOf(items []models.SelectedItem, itemID string, kind models.ItemKind) int {
	for _, item := range items {
		if item.ItemID == itemID && item.Kind == kind {
			return item.Quantity
		}
	}
	return 0
}
