package consumption

import (
	"Pantry-Tracker-Backend/domain"
	"Pantry-Tracker-Backend/entities"
	"Pantry-Tracker-Backend/pkg/grocery"
	"Pantry-Tracker-Backend/pkg/user"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ConsumptionService interface {
		RecordConsumption(ctx context.Context, req domain.RecordConsumptionRequest, userID string) (domain.ConsumptionLogResponse, error)
		EditConsumption(ctx context.Context, id string, req domain.EditConsumptionRequest, userID string) error
		DeleteConsumption(ctx context.Context, id string, userID string) error
		GetConsumptionLogs(ctx context.Context, userID string) ([]domain.ConsumptionLogResponse, error)
		ExportConsumptionLogs(ctx context.Context, userID string) ([]byte, string, error)
	}

	consumptionService struct {
		consumptionRepository ConsumptionRepository
		groceryRepository     grocery.GroceryRepository
		userRepository        user.UserRepository
	}
)

func NewConsumptionService(
	consumptionRepository ConsumptionRepository,
	groceryRepository grocery.GroceryRepository,
	userRepository user.UserRepository,
) ConsumptionService {
	return &consumptionService{
		consumptionRepository: consumptionRepository,
		groceryRepository:     groceryRepository,
		userRepository:        userRepository,
	}
}

// RecordConsumption creates a log entry snapshotting the item's current name
// and category, then debits the item's quantity through the ledger.
func (s *consumptionService) RecordConsumption(ctx context.Context, req domain.RecordConsumptionRequest, userID string) (domain.ConsumptionLogResponse, error) {
	if req.QtyUsed <= 0 {
		return domain.ConsumptionLogResponse{}, domain.ErrInvalidQtyUsed
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.ConsumptionLogResponse{}, domain.ErrInvalidDate
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ConsumptionLogResponse{}, domain.ErrParseUUID
	}

	item, err := s.getOwnedItem(ctx, req.GroceryItemID, userID)
	if err != nil {
		return domain.ConsumptionLogResponse{}, err
	}

	itemCategory := ""
	if item.Category != nil {
		itemCategory = item.Category.Name
	}

	log := &entities.ConsumptionLog{
		ID:            uuid.New(),
		UserID:        userUUID,
		GroceryItemID: &item.ID,
		ItemName:      item.Name,
		ItemCategory:  itemCategory,
		Date:          date,
		QtyUsed:       req.QtyUsed,
	}

	grocery.AdjustQuantity(item, -req.QtyUsed)
	if err := s.groceryRepository.UpdateGroceryItem(ctx, item); err != nil {
		return domain.ConsumptionLogResponse{}, err
	}
	if err := s.consumptionRepository.AddConsumptionLog(ctx, log); err != nil {
		return domain.ConsumptionLogResponse{}, err
	}

	return toConsumptionLogResponse(log), nil
}

// EditConsumption re-applies the difference between the previous and the new
// qty_used to the item, so editing a log never double-counts. Repointing the
// log at a different item restores the old item in full and debits the new
// one by the new amount.
func (s *consumptionService) EditConsumption(ctx context.Context, id string, req domain.EditConsumptionRequest, userID string) error {
	if req.QtyUsed <= 0 {
		return domain.ErrInvalidQtyUsed
	}

	log, err := s.getOwnedLog(ctx, id, userID)
	if err != nil {
		return err
	}

	repointed := req.GroceryItemID != "" &&
		(log.GroceryItemID == nil || req.GroceryItemID != log.GroceryItemID.String())

	if repointed {
		if log.GroceryItemID != nil {
			oldItem, err := s.groceryRepository.GetGroceryItemByID(ctx, log.GroceryItemID.String())
			if err == nil {
				grocery.AdjustQuantity(oldItem, log.QtyUsed)
				if err := s.groceryRepository.UpdateGroceryItem(ctx, oldItem); err != nil {
					return err
				}
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		newItem, err := s.getOwnedItem(ctx, req.GroceryItemID, userID)
		if err != nil {
			return err
		}
		grocery.AdjustQuantity(newItem, -req.QtyUsed)
		if err := s.groceryRepository.UpdateGroceryItem(ctx, newItem); err != nil {
			return err
		}

		log.GroceryItemID = &newItem.ID
		log.ItemName = newItem.Name
		log.ItemCategory = ""
		if newItem.Category != nil {
			log.ItemCategory = newItem.Category.Name
		}
	} else if log.GroceryItemID != nil {
		item, err := s.groceryRepository.GetGroceryItemByID(ctx, log.GroceryItemID.String())
		if err == nil {
			grocery.AdjustQuantity(item, log.QtyUsed-req.QtyUsed)
			if err := s.groceryRepository.UpdateGroceryItem(ctx, item); err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return domain.ErrInvalidDate
		}
		log.Date = date
	}
	log.QtyUsed = req.QtyUsed

	return s.consumptionRepository.UpdateConsumptionLog(ctx, log)
}

// DeleteConsumption restores the logged quantity to the item (when it still
// exists) and removes the log.
func (s *consumptionService) DeleteConsumption(ctx context.Context, id string, userID string) error {
	log, err := s.getOwnedLog(ctx, id, userID)
	if err != nil {
		return err
	}

	if log.GroceryItemID != nil {
		item, err := s.groceryRepository.GetGroceryItemByID(ctx, log.GroceryItemID.String())
		if err == nil {
			grocery.AdjustQuantity(item, log.QtyUsed)
			if err := s.groceryRepository.UpdateGroceryItem(ctx, item); err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	return s.consumptionRepository.DeleteConsumptionLog(ctx, id)
}

func (s *consumptionService) GetConsumptionLogs(ctx context.Context, userID string) ([]domain.ConsumptionLogResponse, error) {
	logs, err := s.consumptionRepository.GetConsumptionLogs(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ConsumptionLogResponse, 0, len(logs))
	for _, log := range logs {
		response = append(response, toConsumptionLogResponse(log))
	}
	return response, nil
}

func (s *consumptionService) getOwnedItem(ctx context.Context, id string, userID string) (*entities.GroceryItem, error) {
	item, err := s.groceryRepository.GetGroceryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGroceryItemNotFound
		}
		return nil, err
	}
	if item.UserID.String() != userID {
		return nil, domain.ErrGroceryItemNotFound
	}
	return item, nil
}

func (s *consumptionService) getOwnedLog(ctx context.Context, id string, userID string) (*entities.ConsumptionLog, error) {
	log, err := s.consumptionRepository.GetConsumptionLogByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrConsumptionLogNotFound
		}
		return nil, err
	}
	if log.UserID.String() != userID {
		return nil, domain.ErrConsumptionLogNotFound
	}
	return log, nil
}

func toConsumptionLogResponse(log *entities.ConsumptionLog) domain.ConsumptionLogResponse {
	res := domain.ConsumptionLogResponse{
		ID:           log.ID.String(),
		ItemName:     log.ItemName,
		ItemCategory: log.ItemCategory,
		Date:         log.Date,
		QtyUsed:      log.QtyUsed,
		CreatedAt:    log.CreatedAt,
	}
	if log.GroceryItemID != nil {
		res.GroceryItemID = log.GroceryItemID.String()
	}
	return res
}
