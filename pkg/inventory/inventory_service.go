package inventory

import (
	"context"
	"errors"
	"time"

	"foodwise-backend/domain"
	"foodwise-backend/entities"
	"foodwise-backend/pkg/analytics"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	InventoryService interface {
		AddItem(ctx context.Context, req domain.AddInventoryItemRequest, userID string) (domain.InventoryItemResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateInventoryItemRequest, userID string) error
		DeleteItem(ctx context.Context, id string, userID string) error
		GetItems(ctx context.Context, userID string, status string, page, limit int) ([]domain.InventoryItemResponse, int64, error)
		GetItemByID(ctx context.Context, id string, userID string) (domain.InventoryItemResponse, error)
		ConsumeItem(ctx context.Context, id string, userID string) error
		RefreshStatuses(ctx context.Context, userID string) (int, error)
		GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error)
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
		tables              analytics.Tables
	}
)

func NewInventoryService(inventoryRepository InventoryRepository, tables analytics.Tables) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
		tables:              tables,
	}
}

func (s *inventoryService) AddItem(ctx context.Context, req domain.AddInventoryItemRequest, userID string) (domain.InventoryItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.InventoryItemResponse{}, domain.ErrParseUUID
	}

	purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		return domain.InventoryItemResponse{}, domain.ErrInvalidPurchaseDate
	}

	var expirationDate *time.Time
	if req.ExpirationDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpirationDate)
		if err != nil {
			return domain.InventoryItemResponse{}, domain.ErrInvalidExpirationDate
		}
		expirationDate = &parsed
	}

	item := &entities.InventoryItem{
		ID:             uuid.New(),
		UserID:         userUUID,
		ItemName:       req.ItemName,
		Category:       req.Category,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		PurchaseDate:   purchaseDate,
		ExpirationDate: expirationDate,
		Status:         entities.DeriveStatus("", expirationDate, time.Now()),
		Notes:          req.Notes,
	}

	if err := s.inventoryRepository.AddItem(ctx, item); err != nil {
		return domain.InventoryItemResponse{}, err
	}

	return toItemResponse(item), nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id string, req domain.UpdateInventoryItemRequest, userID string) error {
	item, err := s.ownedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	if item.Status == entities.StatusConsumed {
		return domain.ErrItemAlreadyConsumed
	}

	if req.ItemName != "" {
		item.ItemName = req.ItemName
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Quantity > 0 {
		item.Quantity = req.Quantity
	}
	if req.Unit != "" {
		item.Unit = req.Unit
	}
	if req.PurchaseDate != "" {
		purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
		if err != nil {
			return domain.ErrInvalidPurchaseDate
		}
		item.PurchaseDate = purchaseDate
	}
	if req.ExpirationDate != "" {
		expirationDate, err := time.Parse("2006-01-02", req.ExpirationDate)
		if err != nil {
			return domain.ErrInvalidExpirationDate
		}
		item.ExpirationDate = &expirationDate
	}
	if req.Notes != "" {
		item.Notes = req.Notes
	}

	item.Status = entities.DeriveStatus(item.Status, item.ExpirationDate, time.Now())

	return s.inventoryRepository.UpdateItem(ctx, item)
}

func (s *inventoryService) DeleteItem(ctx context.Context, id string, userID string) error {
	if _, err := s.ownedItem(ctx, id, userID); err != nil {
		return err
	}
	return s.inventoryRepository.DeleteItem(ctx, id)
}

func (s *inventoryService) GetItems(ctx context.Context, userID string, status string, page, limit int) ([]domain.InventoryItemResponse, int64, error) {
	items, count, err := s.inventoryRepository.GetItems(ctx, userID, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]domain.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toItemResponse(item))
	}
	return responses, count, nil
}

func (s *inventoryService) GetItemByID(ctx context.Context, id string, userID string) (domain.InventoryItemResponse, error) {
	item, err := s.ownedItem(ctx, id, userID)
	if err != nil {
		return domain.InventoryItemResponse{}, err
	}
	return toItemResponse(item), nil
}

// ConsumeItem marks an item consumed. Consumed is terminal; repeated calls
// fail instead of silently rewriting history.
func (s *inventoryService) ConsumeItem(ctx context.Context, id string, userID string) error {
	item, err := s.ownedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	if item.Status == entities.StatusConsumed {
		return domain.ErrItemAlreadyConsumed
	}

	item.Status = entities.StatusConsumed
	return s.inventoryRepository.UpdateItem(ctx, item)
}

// RefreshStatuses recomputes the lifecycle status for all of the user's
// non-consumed items and returns how many rows changed. Running it twice on
// the same day changes nothing the second time.
func (s *inventoryService) RefreshStatuses(ctx context.Context, userID string) (int, error) {
	items, err := s.inventoryRepository.GetAllItems(ctx, userID)
	if err != nil {
		return 0, err
	}

	today := time.Now()
	updated := 0
	for _, item := range items {
		next := entities.DeriveStatus(item.Status, item.ExpirationDate, today)
		if next == item.Status {
			continue
		}
		item.Status = next
		if err := s.inventoryRepository.UpdateItem(ctx, item); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}

func (s *inventoryService) GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error) {
	counts, err := s.inventoryRepository.CountByStatus(ctx, userID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	stats := domain.DashboardStatsResponse{
		FreshItems:    counts[entities.StatusFresh],
		ExpiringSoon:  counts[entities.StatusExpiringSoon],
		ExpiredItems:  counts[entities.StatusExpired],
		ConsumedItems: counts[entities.StatusConsumed],
	}
	stats.TotalItems = stats.FreshItems + stats.ExpiringSoon + stats.ExpiredItems + stats.ConsumedItems

	// Money not wasted: the estimated cost of everything consumed rather
	// than thrown away.
	items, err := s.inventoryRepository.GetAllItems(ctx, userID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}
	for _, item := range items {
		if item.Status == entities.StatusConsumed {
			stats.EstimatedSavings += s.tables.CostPerUnit(item.Category) * item.Quantity
		}
	}

	return stats, nil
}

func (s *inventoryService) ownedItem(ctx context.Context, id string, userID string) (*entities.InventoryItem, error) {
	item, err := s.inventoryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInventoryItemNotFound
		}
		return nil, err
	}
	if item.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedAccess
	}
	return item, nil
}

func toItemResponse(item *entities.InventoryItem) domain.InventoryItemResponse {
	return domain.InventoryItemResponse{
		ID:             item.ID.String(),
		ItemName:       item.ItemName,
		Category:       item.Category,
		Quantity:       item.Quantity,
		Unit:           item.Unit,
		PurchaseDate:   item.PurchaseDate,
		ExpirationDate: item.ExpirationDate,
		Status:         item.Status,
		Notes:          item.Notes,
		CreatedAt:      item.CreatedAt,
	}
}
