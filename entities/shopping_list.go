package entities

import (
	"github.com/google/uuid"
)

type ShoppingListItem struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	GroceryItemID uuid.UUID  `json:"grocery_item_id"`
	Quantity      float64    `json:"quantity"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	UnitID        *uuid.UUID `json:"unit_id,omitempty"`
	Purchased     bool       `json:"purchased"`

	User        *User        `gorm:"foreignKey:UserID"`
	GroceryItem *GroceryItem `gorm:"foreignKey:GroceryItemID"`
	Category    *Category    `gorm:"foreignKey:CategoryID"`
	Unit        *Unit        `gorm:"foreignKey:UnitID"`
	Timestamp
}
