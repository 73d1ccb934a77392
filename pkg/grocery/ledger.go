package grocery

import (
	"Pantry-Tracker-Backend/entities"
)

// AdjustQuantity applies delta to the item's quantity and floors the result
// at zero. Every quantity mutation in the system funnels through this one
// primitive; callers persist the item afterwards. Deltas that would push the
// quantity negative are absorbed silently.
func AdjustQuantity(item *entities.GroceryItem, delta float64) {
	item.Quantity += delta
	if item.Quantity < 0 {
		item.Quantity = 0
	}
}
