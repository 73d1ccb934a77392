package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddGroceryItem    = "grocery item added successfully"
	MessageSuccessUpdateGroceryItem = "grocery item updated successfully"
	MessageSuccessDeleteGroceryItem = "grocery item deleted successfully"
	MessageSuccessGetGroceryItems   = "grocery items retrieved successfully"
	MessageSuccessUploadPhoto       = "photo uploaded successfully"
	MessageSuccessGetMasterData     = "master data retrieved successfully"

	MessageFailedAddGroceryItem    = "failed to add grocery item"
	MessageFailedUpdateGroceryItem = "failed to update grocery item"
	MessageFailedDeleteGroceryItem = "failed to delete grocery item"
	MessageFailedGetGroceryItems   = "failed to retrieve grocery items"
	MessageFailedUploadPhoto       = "failed to upload photo"
	MessageFailedGetMasterData     = "failed to retrieve master data"

	ErrGroceryItemNotFound = errors.New("grocery item not found")
	ErrInvalidQuantity     = errors.New("quantity must not be negative")
)

type (
	AddGroceryItemRequest struct {
		Name         string  `json:"name" validate:"required,max=120"`
		Quantity     float64 `json:"quantity" validate:"omitempty,gte=0"`
		CategoryID   string  `json:"category_id" validate:"omitempty,uuid"`
		LocationID   string  `json:"location_id" validate:"omitempty,uuid"`
		UnitID       string  `json:"unit_id" validate:"omitempty,uuid"`
		ExpiryDate   string  `json:"expiry_date" validate:"omitempty"`
		PurchaseDate string  `json:"purchase_date" validate:"omitempty"`
		Barcode      string  `json:"barcode" validate:"omitempty,max=64"`
	}

	UpdateGroceryItemRequest struct {
		Name         string   `json:"name" validate:"omitempty,max=120"`
		Quantity     *float64 `json:"quantity" validate:"omitempty,gte=0"`
		CategoryID   string   `json:"category_id" validate:"omitempty,uuid"`
		LocationID   string   `json:"location_id" validate:"omitempty,uuid"`
		UnitID       string   `json:"unit_id" validate:"omitempty,uuid"`
		ExpiryDate   string   `json:"expiry_date" validate:"omitempty"`
		PurchaseDate string   `json:"purchase_date" validate:"omitempty"`
		Barcode      string   `json:"barcode" validate:"omitempty,max=64"`
	}

	GroceryItemResponse struct {
		ID           string     `json:"id"`
		Name         string     `json:"name"`
		Quantity     float64    `json:"quantity"`
		Category     string     `json:"category,omitempty"`
		Location     string     `json:"location,omitempty"`
		Unit         string     `json:"unit,omitempty"`
		ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
		PurchaseDate *time.Time `json:"purchase_date,omitempty"`
		Barcode      string     `json:"barcode,omitempty"`
		PhotoURL     string     `json:"photo_url,omitempty"`
		CreatedAt    time.Time  `json:"created_at"`
	}

	GroceryItemFilter struct {
		Search     string
		CategoryID string
		LocationID string
		Sort       string // "name", "expiry" or "quantity"
	}

	UploadGroceryPhotoRequest struct {
		GroceryItemID string                `json:"grocery_item_id" form:"grocery_item_id" validate:"required,uuid"`
		Photo         *multipart.FileHeader `json:"photo" form:"photo" validate:"required"`
	}

	MasterDataResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
)
