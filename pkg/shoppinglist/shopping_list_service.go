package shoppinglist

import (
	"Pantry-Tracker-Backend/domain"
	"Pantry-Tracker-Backend/entities"
	"Pantry-Tracker-Backend/pkg/grocery"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ShoppingListService interface {
		AddShoppingListItem(ctx context.Context, req domain.AddShoppingListItemRequest, userID string) (domain.ShoppingListItemResponse, error)
		GetShoppingList(ctx context.Context, userID string) ([]domain.ShoppingListItemResponse, error)
		MarkPurchased(ctx context.Context, id string, req domain.MarkPurchasedRequest, userID string) error
		RemoveShoppingListItem(ctx context.Context, id string, userID string) error
	}

	shoppingListService struct {
		shoppingListRepository ShoppingListRepository
		groceryRepository      grocery.GroceryRepository
	}
)

func NewShoppingListService(
	shoppingListRepository ShoppingListRepository,
	groceryRepository grocery.GroceryRepository,
) ShoppingListService {
	return &shoppingListService{
		shoppingListRepository: shoppingListRepository,
		groceryRepository:      groceryRepository,
	}
}

// AddShoppingListItem creates a pending purchase entry. At most one entry may
// exist per (user, grocery item) pair.
func (s *shoppingListService) AddShoppingListItem(ctx context.Context, req domain.AddShoppingListItemRequest, userID string) (domain.ShoppingListItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ShoppingListItemResponse{}, domain.ErrParseUUID
	}

	item, err := s.groceryRepository.GetGroceryItemByID(ctx, req.GroceryItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShoppingListItemResponse{}, domain.ErrGroceryItemNotFound
		}
		return domain.ShoppingListItemResponse{}, err
	}
	if item.UserID.String() != userID {
		return domain.ShoppingListItemResponse{}, domain.ErrGroceryItemNotFound
	}

	exists, err := s.shoppingListRepository.ExistsForGroceryItem(ctx, userID, req.GroceryItemID)
	if err != nil {
		return domain.ShoppingListItemResponse{}, err
	}
	if exists {
		return domain.ShoppingListItemResponse{}, domain.ErrDuplicateShoppingListEntry
	}

	categoryID, err := parseOptionalUUID(req.CategoryID)
	if err != nil {
		return domain.ShoppingListItemResponse{}, err
	}
	unitID, err := parseOptionalUUID(req.UnitID)
	if err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	entry := &entities.ShoppingListItem{
		ID:            uuid.New(),
		UserID:        userUUID,
		GroceryItemID: item.ID,
		Quantity:      req.Quantity,
		CategoryID:    categoryID,
		UnitID:        unitID,
	}

	if err := s.shoppingListRepository.AddShoppingListItem(ctx, entry); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	entry.GroceryItem = item
	return toShoppingListItemResponse(entry), nil
}

func (s *shoppingListService) GetShoppingList(ctx context.Context, userID string) ([]domain.ShoppingListItemResponse, error) {
	entries, err := s.shoppingListRepository.GetShoppingListItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ShoppingListItemResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, toShoppingListItemResponse(entry))
	}
	return response, nil
}

func (s *shoppingListService) MarkPurchased(ctx context.Context, id string, req domain.MarkPurchasedRequest, userID string) error {
	entry, err := s.getOwnedEntry(ctx, id, userID)
	if err != nil {
		return err
	}

	entry.Purchased = req.Purchased
	return s.shoppingListRepository.UpdateShoppingListItem(ctx, entry)
}

// RemoveShoppingListItem restocks the referenced grocery item by the
// requested quantity, then deletes the entry.
func (s *shoppingListService) RemoveShoppingListItem(ctx context.Context, id string, userID string) error {
	entry, err := s.getOwnedEntry(ctx, id, userID)
	if err != nil {
		return err
	}

	item, err := s.groceryRepository.GetGroceryItemByID(ctx, entry.GroceryItemID.String())
	if err == nil {
		grocery.AdjustQuantity(item, entry.Quantity)
		if err := s.groceryRepository.UpdateGroceryItem(ctx, item); err != nil {
			return err
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.shoppingListRepository.DeleteShoppingListItem(ctx, id)
}

func (s *shoppingListService) getOwnedEntry(ctx context.Context, id string, userID string) (*entities.ShoppingListItem, error) {
	entry, err := s.shoppingListRepository.GetShoppingListItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShoppingListEntryNotFound
		}
		return nil, err
	}
	if entry.UserID.String() != userID {
		return nil, domain.ErrShoppingListEntryNotFound
	}
	return entry, nil
}

func toShoppingListItemResponse(entry *entities.ShoppingListItem) domain.ShoppingListItemResponse {
	res := domain.ShoppingListItemResponse{
		ID:            entry.ID.String(),
		GroceryItemID: entry.GroceryItemID.String(),
		Quantity:      entry.Quantity,
		Purchased:     entry.Purchased,
		CreatedAt:     entry.CreatedAt,
	}
	if entry.GroceryItem != nil {
		res.ItemName = entry.GroceryItem.Name
	}
	if entry.Category != nil {
		res.Category = entry.Category.Name
	}
	if entry.Unit != nil {
		res.Unit = entry.Unit.Name
	}
	return res
}

func parseOptionalUUID(value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := uuid.Parse(value)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	return &parsed, nil
}
