package grocery

import (
	"Pantry-Tracker-Backend/domain"
	"Pantry-Tracker-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	GroceryRepository interface {
		AddGroceryItem(ctx context.Context, item *entities.GroceryItem) error
		GetGroceryItemByID(ctx context.Context, id string) (*entities.GroceryItem, error)
		UpdateGroceryItem(ctx context.Context, item *entities.GroceryItem) error
		DeleteGroceryItem(ctx context.Context, id string) error
		GetGroceryItems(ctx context.Context, userID string, filter domain.GroceryItemFilter) ([]*entities.GroceryItem, error)

		CreateFoodWasted(ctx context.Context, wasted *entities.FoodWasted) error

		GetCategories(ctx context.Context) ([]*entities.Category, error)
		GetLocations(ctx context.Context) ([]*entities.Location, error)
		GetUnits(ctx context.Context) ([]*entities.Unit, error)
	}

	groceryRepository struct {
		db *gorm.DB
	}
)

func NewGroceryRepository(db *gorm.DB) GroceryRepository {
	return &groceryRepository{db: db}
}

func (r *groceryRepository) AddGroceryItem(ctx context.Context, item *entities.GroceryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *groceryRepository) GetGroceryItemByID(ctx context.Context, id string) (*entities.GroceryItem, error) {
	var item entities.GroceryItem
	if err := r.db.WithContext(ctx).
		Preload("Category").Preload("Location").Preload("Unit").
		Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *groceryRepository) UpdateGroceryItem(ctx context.Context, item *entities.GroceryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *groceryRepository) DeleteGroceryItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.GroceryItem{}).Error
}

func (r *groceryRepository) GetGroceryItems(ctx context.Context, userID string, filter domain.GroceryItemFilter) ([]*entities.GroceryItem, error) {
	var items []*entities.GroceryItem

	query := r.db.WithContext(ctx).
		Preload("Category").Preload("Location").Preload("Unit").
		Where("user_id = ?", userID)

	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.LocationID != "" {
		query = query.Where("location_id = ?", filter.LocationID)
	}

	switch filter.Sort {
	case "expiry":
		query = query.Order("expiry_date asc NULLS LAST")
	case "quantity":
		query = query.Order("quantity desc")
	default:
		query = query.Order("name asc")
	}

	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *groceryRepository) CreateFoodWasted(ctx context.Context, wasted *entities.FoodWasted) error {
	return r.db.WithContext(ctx).Create(wasted).Error
}

func (r *groceryRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *groceryRepository) GetLocations(ctx context.Context) ([]*entities.Location, error) {
	var locations []*entities.Location
	if err := r.db.WithContext(ctx).Order("name asc").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *groceryRepository) GetUnits(ctx context.Context) ([]*entities.Unit, error) {
	var units []*entities.Unit
	if err := r.db.WithContext(ctx).Order("name asc").Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}
