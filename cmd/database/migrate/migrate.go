package migration

import (
	"Pantry-Tracker-Backend/entities"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Category{}, &entities.Location{}, &entities.Unit{}); err != nil {
		log.Fatalf("Error migrating master data database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.GroceryItem{}); err != nil {
		log.Fatalf("Error migrating grocery item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ConsumptionLog{}); err != nil {
		log.Fatalf("Error migrating consumption log database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ShoppingListItem{}); err != nil {
		log.Fatalf("Error migrating shopping list database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodWasted{}); err != nil {
		log.Fatalf("Error migrating food wasted database: %v", err)
		return err
	}

	if err := seedMasterData(db); err != nil {
		log.Fatalf("Error seeding master data: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

func seedMasterData(db *gorm.DB) error {
	categories := []string{"Produce", "Dairy", "Meat", "Bakery", "Frozen", "Pantry", "Beverages", "Snacks"}
	for _, name := range categories {
		category := entities.Category{ID: uuid.New(), Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&category).Error; err != nil {
			return err
		}
	}

	locations := []string{"Fridge", "Freezer", "Pantry", "Cupboard", "Counter"}
	for _, name := range locations {
		location := entities.Location{ID: uuid.New(), Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&location).Error; err != nil {
			return err
		}
	}

	units := []string{"pcs", "kg", "g", "l", "ml", "pack"}
	for _, name := range units {
		unit := entities.Unit{ID: uuid.New(), Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&unit).Error; err != nil {
			return err
		}
	}

	return nil
}
