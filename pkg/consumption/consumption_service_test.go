package consumption_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"Pantry-Tracker-Backend/domain"
	"Pantry-Tracker-Backend/entities"
	"Pantry-Tracker-Backend/pkg/consumption"
	"Pantry-Tracker-Backend/pkg/grocery"
	"Pantry-Tracker-Backend/pkg/user"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
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
		&entities.ConsumptionLog{},
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

func newService(db *gorm.DB) consumption.ConsumptionService {
	return consumption.NewConsumptionService(
		consumption.NewConsumptionRepository(db),
		grocery.NewGroceryRepository(db),
		user.NewUserRepository(db),
	)
}

func itemQuantity(t *testing.T, db *gorm.DB, id uuid.UUID) float64 {
	t.Helper()
	var item entities.GroceryItem
	if err := db.First(&item, "id = ?", id).Error; err != nil {
		t.Fatalf("reload item: %v", err)
	}
	return item.Quantity
}

func TestRecordEditDeleteConservation(t *testing.T) {
	db := memdb(t)
	owner := seedUser(t, db, "alice")
	item := seedItem(t, db, owner, "Milk", 10)
	svc := newService(db)
	ctx := context.Background()

	res, err := svc.RecordConsumption(ctx, domain.RecordConsumptionRequest{
		GroceryItemID: item.ID.String(),
		Date:          "2026-03-10",
		QtyUsed:       4,
	}, owner.ID.String())
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if got := itemQuantity(t, db, item.ID); got != 6 {
		t.Fatalf("want quantity 6 after recording 4, got %v", got)
	}

	err = svc.EditConsumption(ctx, res.ID, domain.EditConsumptionRequest{QtyUsed: 7}, owner.ID.String())
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if got := itemQuantity(t, db, item.ID); got != 3 {
		t.Fatalf("want quantity 3 after editing to 7, got %v", got)
	}

	if err := svc.DeleteConsumption(ctx, res.ID, owner.ID.String()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := itemQuantity(t, db, item.ID); got != 10 {
		t.Fatalf("want quantity 10 after delete, got %v", got)
	}

	logs, err := svc.GetConsumptionLogs(ctx, owner.ID.String())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(logs) != 0 {
		t.Fatalf("want no logs after delete, got %d", len(logs))
	}
}

func TestRecordFloorsQuantityAtZero(t *testing.T) {
	db := memdb(t)
	owner := seedUser(t, db, "alice")
	item := seedItem(t, db, owner, "Eggs", 5)
	svc := newService(db)

	_, err := svc.RecordConsumption(context.Background(), domain.RecordConsumptionRequest{
		GroceryItemID: item.ID.String(),
		Date:          "2026-03-10",
		QtyUsed:       8,
	}, owner.ID.String())
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if got := itemQuantity(t, db, item.ID); got != 0 {
		t.Fatalf("want quantity floored to 0, got %v", got)
	}
}

func TestRecordRejectsInvalidRequests(t *testing.T) {
	db := memdb(t)
	owner := seedUser(t, db, "alice")
	stranger := seedUser(t, db, "bob")
	item := seedItem(t, db, owner, "Milk", 10)
	svc := newService(db)
	ctx := context.Background()

	_, err := svc.RecordConsumption(ctx, domain.RecordConsumptionRequest{
		GroceryItemID: item.ID.String(),
		Date:          "2026-03-10",
		QtyUsed:       0,
	}, owner.ID.String())
	if !errors.Is(err, domain.ErrInvalidQtyUsed) {
		t.Fatalf("want ErrInvalidQtyUsed for zero qty, got %v", err)
	}

	_, err = svc.RecordConsumption(ctx, domain.RecordConsumptionRequest{
		GroceryItemID: uuid.NewString(),
		Date:          "2026-03-10",
		QtyUsed:       1,
	}, owner.ID.String())
	if !errors.Is(err, domain.ErrGroceryItemNotFound) {
		t.Fatalf("want ErrGroceryItemNotFound for unknown item, got %v", err)
	}

	// other users' items are indistinguishable from missing ones
	_, err = svc.RecordConsumption(ctx, domain.RecordConsumptionRequest{
		GroceryItemID: item.ID.String(),
		Date:          "2026-03-10",
		QtyUsed:       1,
	}, stranger.ID.String())
	if !errors.Is(err, domain.ErrGroceryItemNotFound) {
		t.Fatalf("want ErrGroceryItemNotFound for foreign item, got %v", err)
	}

	if got := itemQuantity(t, db, item.ID); got != 10 {
		t.Fatalf("rejected requests must not touch quantity, got %v", got)
	}
}

func TestEditRepointsToAnotherItem(t *testing.T) {
	db := memdb(t)
	owner := seedUser(t, db, "alice")
	milk := seedItem(t, db, owner, "Milk", 10)
	bread := seedItem(t, db, owner, "Bread", 6)
	svc := newService(db)
	ctx := context.Background()

	res, err := svc.RecordConsumption(ctx, domain.RecordConsumptionRequest{
		GroceryItemID: milk.ID.String(),
		Date:          "2026-03-10",
		QtyUsed:       4,
	}, owner.ID.String())
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	err = svc.EditConsumption(ctx, res.ID, domain.EditConsumptionRequest{
		GroceryItemID: bread.ID.String(),
		QtyUsed:       2,
	}, owner.ID.String())
	if err != nil {
		t.Fatalf("edit: %v", err)
	}

	if got := itemQuantity(t, db, milk.ID); got != 10 {
		t.Fatalf("want milk restored to 10, got %v", got)
	}
	if got := itemQuantity(t, db, bread.ID); got != 4 {
		t.Fatalf("want bread debited to 4, got %v", got)
	}

	logs, err := svc.GetConsumptionLogs(ctx, owner.ID.String())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(logs) != 1 || logs[0].ItemName != "Bread" || logs[0].QtyUsed != 2 {
		t.Fatalf("want one log for Bread qty 2, got %+v", logs)
	}
}

func TestDeleteLogSurvivesItemDeletion(t *testing.T) {
	db := memdb(t)
	owner := seedUser(t, db, "alice")
	item := seedItem(t, db, owner, "Milk", 10)
	svc := newService(db)
	ctx := context.Background()

	res, err := svc.RecordConsumption(ctx, domain.RecordConsumptionRequest{
		GroceryItemID: item.ID.String(),
		Date:          "2026-03-10",
		QtyUsed:       4,
	}, owner.ID.String())
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	if err := db.Delete(&entities.GroceryItem{}, "id = ?", item.ID).Error; err != nil {
		t.Fatalf("delete item: %v", err)
	}

	if err := svc.DeleteConsumption(ctx, res.ID, owner.ID.String()); err != nil {
		t.Fatalf("delete log: %v", err)
	}

	logs, err := svc.GetConsumptionLogs(ctx, owner.ID.String())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(logs) != 0 {
		t.Fatalf("want no logs, got %d", len(logs))
	}
}

func TestExportConsumptionLogs(t *testing.T) {
	db := memdb(t)
	owner := seedUser(t, db, "alice")
	item := seedItem(t, db, owner, "Milk", 10)
	svc := newService(db)
	ctx := context.Background()

	_, err := svc.RecordConsumption(ctx, domain.RecordConsumptionRequest{
		GroceryItemID: item.ID.String(),
		Date:          "2026-03-10",
		QtyUsed:       4,
	}, owner.ID.String())
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	data, filename, err := svc.ExportConsumptionLogs(ctx, owner.ID.String())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasPrefix(filename, "consumption_alice_") || !strings.HasSuffix(filename, ".xlsx") {
		t.Fatalf("unexpected filename %q", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	checks := map[string]string{
		"A1": "Date",
		"A2": "2026-03-10",
		"B2": "Milk",
		"C2": "4",
		"D2": "alice",
	}
	for cell, want := range checks {
		got, err := f.GetCellValue("Consumption", cell)
		if err != nil {
			t.Fatalf("read cell %s: %v", cell, err)
		}
		if got != want {
			t.Fatalf("cell %s: want %q, got %q", cell, want, got)
		}
	}
}
