package consumption

import (
	"Pantry-Tracker-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ConsumptionRepository interface {
		AddConsumptionLog(ctx context.Context, log *entities.ConsumptionLog) error
		GetConsumptionLogByID(ctx context.Context, id string) (*entities.ConsumptionLog, error)
		UpdateConsumptionLog(ctx context.Context, log *entities.ConsumptionLog) error
		DeleteConsumptionLog(ctx context.Context, id string) error
		GetConsumptionLogs(ctx context.Context, userID string) ([]*entities.ConsumptionLog, error)
	}

	consumptionRepository struct {
		db *gorm.DB
	}
)

func NewConsumptionRepository(db *gorm.DB) ConsumptionRepository {
	return &consumptionRepository{db: db}
}

func (r *consumptionRepository) AddConsumptionLog(ctx context.Context, log *entities.ConsumptionLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *consumptionRepository) GetConsumptionLogByID(ctx context.Context, id string) (*entities.ConsumptionLog, error) {
	var log entities.ConsumptionLog
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *consumptionRepository) UpdateConsumptionLog(ctx context.Context, log *entities.ConsumptionLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}

func (r *consumptionRepository) DeleteConsumptionLog(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ConsumptionLog{}).Error
}

func (r *consumptionRepository) GetConsumptionLogs(ctx context.Context, userID string) ([]*entities.ConsumptionLog, error) {
	var logs []*entities.ConsumptionLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
