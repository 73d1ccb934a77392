package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddShoppingListItem    = "shopping list entry added successfully"
	MessageSuccessGetShoppingList        = "shopping list retrieved successfully"
	MessageSuccessMarkPurchased          = "shopping list entry updated successfully"
	MessageSuccessRemoveShoppingListItem = "shopping list entry removed successfully"

	MessageFailedAddShoppingListItem    = "failed to add shopping list entry"
	MessageFailedGetShoppingList        = "failed to retrieve shopping list"
	MessageFailedMarkPurchased          = "failed to update shopping list entry"
	MessageFailedRemoveShoppingListItem = "failed to remove shopping list entry"

	ErrShoppingListEntryNotFound  = errors.New("shopping list entry not found")
	ErrDuplicateShoppingListEntry = errors.New("shopping list entry already exists for this item")
)

type (
	AddShoppingListItemRequest struct {
		GroceryItemID string  `json:"grocery_item_id" validate:"required,uuid"`
		Quantity      float64 `json:"quantity" validate:"required,gt=0"`
		CategoryID    string  `json:"category_id" validate:"omitempty,uuid"`
		UnitID        string  `json:"unit_id" validate:"omitempty,uuid"`
	}

	MarkPurchasedRequest struct {
		Purchased bool `json:"purchased"`
	}

	ShoppingListItemResponse struct {
		ID            string    `json:"id"`
		GroceryItemID string    `json:"grocery_item_id"`
		ItemName      string    `json:"item_name"`
		Quantity      float64   `json:"quantity"`
		Category      string    `json:"category,omitempty"`
		Unit          string    `json:"unit,omitempty"`
		Purchased     bool      `json:"purchased"`
		CreatedAt     time.Time `json:"created_at"`
	}
)
