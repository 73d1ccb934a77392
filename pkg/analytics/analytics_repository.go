package analytics

import (
	"Pantry-Tracker-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	AnalyticsRepository interface {
		GetGroceryItemsByUser(ctx context.Context, userID string) ([]*entities.GroceryItem, error)
		GetConsumptionLogsByUser(ctx context.Context, userID string) ([]*entities.ConsumptionLog, error)
		GetFoodWastedByUser(ctx context.Context, userID string) ([]*entities.FoodWasted, error)
	}

	analyticsRepository struct {
		db *gorm.DB
	}
)

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetGroceryItemsByUser(ctx context.Context, userID string) ([]*entities.GroceryItem, error) {
	var items []*entities.GroceryItem
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *analyticsRepository) GetConsumptionLogsByUser(ctx context.Context, userID string) ([]*entities.ConsumptionLog, error) {
	var logs []*entities.ConsumptionLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *analyticsRepository) GetFoodWastedByUser(ctx context.Context, userID string) ([]*entities.FoodWasted, error) {
	var wasted []*entities.FoodWasted
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&wasted).Error; err != nil {
		return nil, err
	}
	return wasted, nil
}
