package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRecordConsumption = "consumption recorded successfully"
	MessageSuccessEditConsumption   = "consumption log updated successfully"
	MessageSuccessDeleteConsumption = "consumption log deleted successfully"
	MessageSuccessGetConsumption    = "consumption logs retrieved successfully"
	MessageSuccessExportConsumption = "consumption logs exported successfully"

	MessageFailedRecordConsumption = "failed to record consumption"
	MessageFailedEditConsumption   = "failed to update consumption log"
	MessageFailedDeleteConsumption = "failed to delete consumption log"
	MessageFailedGetConsumption    = "failed to retrieve consumption logs"
	MessageFailedExportConsumption = "failed to export consumption logs"

	ErrConsumptionLogNotFound = errors.New("consumption log not found")
	ErrInvalidQtyUsed         = errors.New("qty_used must be positive")
)

type (
	RecordConsumptionRequest struct {
		GroceryItemID string  `json:"grocery_item_id" validate:"required,uuid"`
		Date          string  `json:"date" validate:"required"`
		QtyUsed       float64 `json:"qty_used" validate:"required,gt=0"`
	}

	EditConsumptionRequest struct {
		GroceryItemID string  `json:"grocery_item_id" validate:"omitempty,uuid"`
		Date          string  `json:"date" validate:"omitempty"`
		QtyUsed       float64 `json:"qty_used" validate:"required,gt=0"`
	}

	ConsumptionLogResponse struct {
		ID            string    `json:"id"`
		GroceryItemID string    `json:"grocery_item_id,omitempty"`
		ItemName      string    `json:"item_name"`
		ItemCategory  string    `json:"item_category,omitempty"`
		Date          time.Time `json:"date"`
		QtyUsed       float64   `json:"qty_used"`
		CreatedAt     time.Time `json:"created_at"`
	}
)
