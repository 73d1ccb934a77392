package grocery

import (
	"Pantry-Tracker-Backend/domain"
	"Pantry-Tracker-Backend/entities"
	"Pantry-Tracker-Backend/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	GroceryService interface {
		AddGroceryItem(ctx context.Context, req domain.AddGroceryItemRequest, userID string) (domain.GroceryItemResponse, error)
		UpdateGroceryItem(ctx context.Context, id string, req domain.UpdateGroceryItemRequest, userID string) error
		DeleteGroceryItem(ctx context.Context, id string, userID string) error
		GetGroceryItems(ctx context.Context, userID string, filter domain.GroceryItemFilter) ([]domain.GroceryItemResponse, error)
		GetGroceryItemByID(ctx context.Context, id string, userID string) (domain.GroceryItemResponse, error)
		UploadGroceryPhoto(ctx context.Context, req domain.UploadGroceryPhotoRequest, userID string) error
		GetCategories(ctx context.Context) ([]domain.MasterDataResponse, error)
		GetLocations(ctx context.Context) ([]domain.MasterDataResponse, error)
		GetUnits(ctx context.Context) ([]domain.MasterDataResponse, error)
	}

	groceryService struct {
		groceryRepository GroceryRepository
		s3                storage.AwsS3
	}
)

func NewGroceryService(groceryRepository GroceryRepository, s3 storage.AwsS3) GroceryService {
	return &groceryService{
		groceryRepository: groceryRepository,
		s3:                s3,
	}
}

func (s *groceryService) AddGroceryItem(ctx context.Context, req domain.AddGroceryItemRequest, userID string) (domain.GroceryItemResponse, error) {
	if req.Quantity < 0 {
		return domain.GroceryItemResponse{}, domain.ErrInvalidQuantity
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.GroceryItemResponse{}, domain.ErrParseUUID
	}

	categoryID, err := parseOptionalUUID(req.CategoryID)
	if err != nil {
		return domain.GroceryItemResponse{}, err
	}
	locationID, err := parseOptionalUUID(req.LocationID)
	if err != nil {
		return domain.GroceryItemResponse{}, err
	}
	unitID, err := parseOptionalUUID(req.UnitID)
	if err != nil {
		return domain.GroceryItemResponse{}, err
	}
	expiryDate, err := parseOptionalDate(req.ExpiryDate)
	if err != nil {
		return domain.GroceryItemResponse{}, err
	}
	purchaseDate, err := parseOptionalDate(req.PurchaseDate)
	if err != nil {
		return domain.GroceryItemResponse{}, err
	}

	item := &entities.GroceryItem{
		ID:           uuid.New(),
		UserID:       userUUID,
		Name:         req.Name,
		CategoryID:   categoryID,
		LocationID:   locationID,
		UnitID:       unitID,
		Quantity:     req.Quantity,
		ExpiryDate:   expiryDate,
		PurchaseDate: purchaseDate,
		Barcode:      req.Barcode,
	}

	if err := s.groceryRepository.AddGroceryItem(ctx, item); err != nil {
		return domain.GroceryItemResponse{}, err
	}

	return toGroceryItemResponse(item), nil
}

func (s *groceryService) UpdateGroceryItem(ctx context.Context, id string, req domain.UpdateGroceryItemRequest, userID string) error {
	item, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return domain.ErrInvalidQuantity
		}
		item.Quantity = *req.Quantity
	}
	if req.CategoryID != "" {
		categoryID, err := parseOptionalUUID(req.CategoryID)
		if err != nil {
			return err
		}
		item.CategoryID = categoryID
	}
	if req.LocationID != "" {
		locationID, err := parseOptionalUUID(req.LocationID)
		if err != nil {
			return err
		}
		item.LocationID = locationID
	}
	if req.UnitID != "" {
		unitID, err := parseOptionalUUID(req.UnitID)
		if err != nil {
			return err
		}
		item.UnitID = unitID
	}
	if req.ExpiryDate != "" {
		expiryDate, err := parseOptionalDate(req.ExpiryDate)
		if err != nil {
			return err
		}
		item.ExpiryDate = expiryDate
	}
	if req.PurchaseDate != "" {
		purchaseDate, err := parseOptionalDate(req.PurchaseDate)
		if err != nil {
			return err
		}
		item.PurchaseDate = purchaseDate
	}
	if req.Barcode != "" {
		item.Barcode = req.Barcode
	}

	return s.groceryRepository.UpdateGroceryItem(ctx, item)
}

// DeleteGroceryItem archives a FoodWasted snapshot before removing the item,
// so waste analytics survive the deletion.
func (s *groceryService) DeleteGroceryItem(ctx context.Context, id string, userID string) error {
	item, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	wasted := &entities.FoodWasted{
		ID:         uuid.New(),
		UserID:     item.UserID,
		ItemName:   item.Name,
		Quantity:   item.Quantity,
		ExpiryDate: item.ExpiryDate,
	}
	if err := s.groceryRepository.CreateFoodWasted(ctx, wasted); err != nil {
		return err
	}

	if item.PhotoURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(item.PhotoURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.groceryRepository.DeleteGroceryItem(ctx, id)
}

func (s *groceryService) GetGroceryItems(ctx context.Context, userID string, filter domain.GroceryItemFilter) ([]domain.GroceryItemResponse, error) {
	items, err := s.groceryRepository.GetGroceryItems(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	response := make([]domain.GroceryItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toGroceryItemResponse(item))
	}
	return response, nil
}

func (s *groceryService) GetGroceryItemByID(ctx context.Context, id string, userID string) (domain.GroceryItemResponse, error) {
	item, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return domain.GroceryItemResponse{}, err
	}
	return toGroceryItemResponse(item), nil
}

func (s *groceryService) UploadGroceryPhoto(ctx context.Context, req domain.UploadGroceryPhotoRequest, userID string) error {
	item, err := s.getOwnedItem(ctx, req.GroceryItemID, userID)
	if err != nil {
		return err
	}

	fileName := fmt.Sprintf("grocery-item-%s", item.ID.String())
	var objectKey string
	var uploadErr error

	if item.PhotoURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(item.PhotoURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Photo, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Photo, "grocery-items", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Photo, "grocery-items", storage.AllowImage...)
	}
	if uploadErr != nil {
		return uploadErr
	}

	item.PhotoURL = s.s3.GetPublicLinkKey(objectKey)
	return s.groceryRepository.UpdateGroceryItem(ctx, item)
}

func (s *groceryService) GetCategories(ctx context.Context) ([]domain.MasterDataResponse, error) {
	categories, err := s.groceryRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	response := make([]domain.MasterDataResponse, 0, len(categories))
	for _, c := range categories {
		response = append(response, domain.MasterDataResponse{ID: c.ID.String(), Name: c.Name})
	}
	return response, nil
}

func (s *groceryService) GetLocations(ctx context.Context) ([]domain.MasterDataResponse, error) {
	locations, err := s.groceryRepository.GetLocations(ctx)
	if err != nil {
		return nil, err
	}
	response := make([]domain.MasterDataResponse, 0, len(locations))
	for _, l := range locations {
		response = append(response, domain.MasterDataResponse{ID: l.ID.String(), Name: l.Name})
	}
	return response, nil
}

func (s *groceryService) GetUnits(ctx context.Context) ([]domain.MasterDataResponse, error) {
	units, err := s.groceryRepository.GetUnits(ctx)
	if err != nil {
		return nil, err
	}
	response := make([]domain.MasterDataResponse, 0, len(units))
	for _, u := range units {
		response = append(response, domain.MasterDataResponse{ID: u.ID.String(), Name: u.Name})
	}
	return response, nil
}

// getOwnedItem resolves an item by id and hides other users' items behind
// the not-found error, so ownership cannot be probed.
func (s *groceryService) getOwnedItem(ctx context.Context, id string, userID string) (*entities.GroceryItem, error) {
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

func toGroceryItemResponse(item *entities.GroceryItem) domain.GroceryItemResponse {
	res := domain.GroceryItemResponse{
		ID:           item.ID.String(),
		Name:         item.Name,
		Quantity:     item.Quantity,
		ExpiryDate:   item.ExpiryDate,
		PurchaseDate: item.PurchaseDate,
		Barcode:      item.Barcode,
		PhotoURL:     item.PhotoURL,
		CreatedAt:    item.CreatedAt,
	}
	if item.Category != nil {
		res.Category = item.Category.Name
	}
	if item.Location != nil {
		res.Location = item.Location.Name
	}
	if item.Unit != nil {
		res.Unit = item.Unit.Name
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

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	return &parsed, nil
}
