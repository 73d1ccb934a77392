package entities

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"uniqueIndex" json:"name"`
}

type Location struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"uniqueIndex" json:"name"`
}

type Unit struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"uniqueIndex" json:"name"`
}

type GroceryItem struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	Name         string     `json:"name"`
	CategoryID   *uuid.UUID `json:"category_id,omitempty"`
	LocationID   *uuid.UUID `json:"location_id,omitempty"`
	UnitID       *uuid.UUID `json:"unit_id,omitempty"`
	Quantity     float64    `json:"quantity"` // never negative, every write goes through grocery.AdjustQuantity
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	Barcode      string     `json:"barcode,omitempty"`
	PhotoURL     string     `json:"photo_url,omitempty"`

	User     *User     `gorm:"foreignKey:UserID"`
	Category *Category `gorm:"foreignKey:CategoryID"`
	Location *Location `gorm:"foreignKey:LocationID"`
	Unit     *Unit     `gorm:"foreignKey:UnitID"`
	Timestamp
}
