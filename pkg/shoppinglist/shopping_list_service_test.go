package shoppinglist_test

import (
	"context"
	"errors"
	"testing"

	"Pantry-Tracker-Backend/domain"
	"Pantry-Tracker-Backend/entities"
	"Pantry-Tracker-Backend/pkg/grocery"
	"Pantry-Tracker-Backend/pkg/shoppinglist"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func memdb(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Category{},
		&entities.Location{},
		&entities.Unit{},
		&entities.GroceryItem{},
		&entities.ShoppingListItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *entities.User {
	t.Helper()
	u := &entities.User{
		ID:       uuid.New(),
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Role:     domain.RoleMember,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedItem(t *testing.T, db *gorm.DB, owner *entities.User, name string, qty float64) *entities.GroceryItem {
	t.Helper()
	item := &entities.GroceryItem{
		ID:       uuid.New(),
		UserID:   owner.ID,
		Name:     name,
		Quantity: qty,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return item
}

func newService(db *gorm.DB) shoppinglist.ShoppingListService {
	return shoppinglist.NewShoppingListService(
		shoppinglist.NewShoppingListRepository(db),
		grocery.NewGroceryRepository(db),
	)
}

func TestAddRejectsDuplicateEntry(t *testing.T) {
	db := memdb(t)
	owner := seedUser(t, db, "alice")
	item := seedItem(t, db, owner, "Milk", 2)
	svc := newService(db)
	ctx := context.Background()

	_, err := svc.AddShoppingListItem(ctx, domain.AddShoppingListItemRequest{
		GroceryItemID: item.ID.String(),
		Quantity:      5,
	}, owner.ID.String())
	if err != nil {
		t.Fatalf("first add: %v", err)
	}

	_, err = svc.AddShoppingListItem(ctx, domain.AddShoppingListItemRequest{
		GroceryItemID: item.ID.String(),
		Quantity:      3,
	}, owner.ID.String())
	if !errors.Is(err, domain.ErrDuplicateShoppingListEntry) {
		t.Fatalf("want ErrDuplicateShoppingListEntry, got %v", err)
	}
}

func TestAddRejectsForeignOrUnknownItem(t *testing.T) {
	db := memdb(t)
	owner := seedUser(t, db, "alice")
	stranger := seedUser(t, db, "bob")
	item := seedItem(t, db, owner, "Milk", 2)
	svc := newService(db)
	ctx := context.Background()

	_, err := svc.AddShoppingListItem(ctx, domain.AddShoppingListItemRequest{
		GroceryItemID: uuid.NewString(),
		Quantity:      1,
	}, owner.ID.String())
	if !errors.Is(err, domain.ErrGroceryItemNotFound) {
		t.Fatalf("want ErrGroceryItemNotFound for unknown item, got %v", err)
	}

	_, err = svc.AddShoppingListItem(ctx, domain.AddShoppingListItemRequest{
		GroceryItemID: item.ID.String(),
		Quantity:      1,
	}, stranger.ID.String())
	if !errors.Is(err, domain.ErrGroceryItemNotFound) {
		t.Fatalf("want ErrGroceryItemNotFound for foreign item, got %v", err)
	}
}

func TestRemoveRestocksGroceryItem(t *testing.T) {
	db := memdb(t)
	owner := seedUser(t, db, "alice")
	item := seedItem(t, db, owner, "Milk", 2)
	svc := newService(db)
	ctx := context.Background()

	entry, err := svc.AddShoppingListItem(ctx, domain.AddShoppingListItemRequest{
		GroceryItemID: item.ID.String(),
		Quantity:      5,
	}, owner.ID.String())
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := svc.RemoveShoppingListItem(ctx, entry.ID, owner.ID.String()); err != nil {
		t.Fatalf("remove: %v", err)
	}

	var reloaded entities.GroceryItem
	if err := db.First(&reloaded, "id = ?", item.ID).Error; err != nil {
		t.Fatalf("reload item: %v", err)
	}
	if reloaded.Quantity != 7 {
		t.Fatalf("want quantity 7 after restock, got %v", reloaded.Quantity)
	}

	list, err := svc.GetShoppingList(ctx, owner.ID.String())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("want empty list after remove, got %d entries", len(list))
	}
}

func TestMarkPurchased(t *testing.T) {
	db := memdb(t)
	owner := seedUser(t, db, "alice")
	item := seedItem(t, db, owner, "Milk", 2)
	svc := newService(db)
	ctx := context.Background()

	entry, err := svc.AddShoppingListItem(ctx, domain.AddShoppingListItemRequest{
		GroceryItemID: item.ID.String(),
		Quantity:      1,
	}, owner.ID.String())
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	err = svc.MarkPurchased(ctx, entry.ID, domain.MarkPurchasedRequest{Purchased: true}, owner.ID.String())
	if err != nil {
		t.Fatalf("mark purchased: %v", err)
	}

	list, err := svc.GetShoppingList(ctx, owner.ID.String())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || !list[0].Purchased {
		t.Fatalf("want one purchased entry, got %+v", list)
	}
}

func TestEntriesHiddenFromOtherUsers(t *testing.T) {
	db := memdb(t)
	owner := seedUser(t, db, "alice")
	stranger := seedUser(t, db, "bob")
	item := seedItem(t, db, owner, "Milk", 2)
	svc := newService(db)
	ctx := context.Background()

	entry, err := svc.AddShoppingListItem(ctx, domain.AddShoppingListItemRequest{
		GroceryItemID: item.ID.String(),
		Quantity:      1,
	}, owner.ID.String())
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	err = svc.RemoveShoppingListItem(ctx, entry.ID, stranger.ID.String())
	if !errors.Is(err, domain.ErrShoppingListEntryNotFound) {
		t.Fatalf("want ErrShoppingListEntryNotFound, got %v", err)
	}

	err = svc.MarkPurchased(ctx, entry.ID, domain.MarkPurchasedRequest{Purchased: true}, stranger.ID.String())
	if !errors.Is(err, domain.ErrShoppingListEntryNotFound) {
		t.Fatalf("want ErrShoppingListEntryNotFound, got %v", err)
	}
}
