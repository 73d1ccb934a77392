package entities

import (
	"time"

	"github.com/google/uuid"
)

type ConsumptionLog struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	GroceryItemID *uuid.UUID `json:"grocery_item_id,omitempty"`
	ItemName      string     `json:"item_name"` // snapshot, survives item deletion
	ItemCategory  string     `json:"item_category,omitempty"`
	Date          time.Time  `json:"date"`
	QtyUsed       float64    `json:"qty_used"`

	User        *User        `gorm:"foreignKey:UserID"`
	GroceryItem *GroceryItem `gorm:"foreignKey:GroceryItemID;constraint:OnDelete:SET NULL"`
	Timestamp
}
