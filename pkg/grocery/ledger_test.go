package grocery_test

import (
	"testing"

	"Pantry-Tracker-Backend/entities"
	"Pantry-Tracker-Backend/pkg/grocery"
)

func TestAdjustQuantity(t *testing.T) {
	item := &entities.GroceryItem{Quantity: 10}

	grocery.AdjustQuantity(item, -4)
	if item.Quantity != 6 {
		t.Fatalf("want 6 after -4, got %v", item.Quantity)
	}

	grocery.AdjustQuantity(item, 2.5)
	if item.Quantity != 8.5 {
		t.Fatalf("want 8.5 after +2.5, got %v", item.Quantity)
	}
}

func TestAdjustQuantityFloorsAtZero(t *testing.T) {
	item := &entities.GroceryItem{Quantity: 3}

	grocery.AdjustQuantity(item, -8)
	if item.Quantity != 0 {
		t.Fatalf("want 0 after oversized debit, got %v", item.Quantity)
	}

	// once floored, the excess is gone; restoring adds the full delta back
	grocery.AdjustQuantity(item, 8)
	if item.Quantity != 8 {
		t.Fatalf("want 8 after restore, got %v", item.Quantity)
	}
}

func TestAdjustQuantityZeroDelta(t *testing.T) {
	item := &entities.GroceryItem{Quantity: 5}

	grocery.AdjustQuantity(item, 0)
	if item.Quantity != 5 {
		t.Fatalf("want 5 after zero delta, got %v", item.Quantity)
	}
}
