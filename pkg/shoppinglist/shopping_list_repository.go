package shoppinglist

import (
	"Pantry-Tracker-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ShoppingListRepository interface {
		AddShoppingListItem(ctx context.Context, entry *entities.ShoppingListItem) error
		GetShoppingListItemByID(ctx context.Context, id string) (*entities.ShoppingListItem, error)
		GetShoppingListItems(ctx context.Context, userID string) ([]*entities.ShoppingListItem, error)
		ExistsForGroceryItem(ctx context.Context, userID string, groceryItemID string) (bool, error)
		UpdateShoppingListItem(ctx context.Context, entry *entities.ShoppingListItem) error
		DeleteShoppingListItem(ctx context.Context, id string) error
	}

	shoppingListRepository struct {
		db *gorm.DB
	}
)

func NewShoppingListRepository(db *gorm.DB) ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

func (r *shoppingListRepository) AddShoppingListItem(ctx context.Context, entry *entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *shoppingListRepository) GetShoppingListItemByID(ctx context.Context, id string) (*entities.ShoppingListItem, error) {
	var entry entities.ShoppingListItem
	if err := r.db.WithContext(ctx).
		Preload("GroceryItem").Preload("Category").Preload("Unit").
		Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *shoppingListRepository) GetShoppingListItems(ctx context.Context, userID string) ([]*entities.ShoppingListItem, error) {
	var entries []*entities.ShoppingListItem
	if err := r.db.WithContext(ctx).
		Preload("GroceryItem").Preload("Category").Preload("Unit").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *shoppingListRepository) ExistsForGroceryItem(ctx context.Context, userID string, groceryItemID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.ShoppingListItem{}).
		Where("user_id = ? AND grocery_item_id = ?", userID, groceryItemID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *shoppingListRepository) UpdateShoppingListItem(ctx context.Context, entry *entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *shoppingListRepository) DeleteShoppingListItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ShoppingListItem{}).Error
}
