package entities

import (
	"time"

	"github.com/google/uuid"
)

// FoodWasted is an append-only snapshot taken whenever a grocery item is
// deleted, kept for the waste analytics.
type FoodWasted struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	ItemName   string     `json:"item_name"`
	Quantity   float64    `json:"quantity"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
