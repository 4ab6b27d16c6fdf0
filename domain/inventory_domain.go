package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddInventoryItem    = "inventory item added successfully"
	MessageSuccessUpdateInventoryItem = "inventory item updated successfully"
	MessageSuccessDeleteInventoryItem = "inventory item deleted successfully"
	MessageSuccessGetInventoryItems   = "inventory items retrieved successfully"
	MessageSuccessConsumeItem         = "inventory item marked as consumed"
	MessageSuccessRefreshStatuses     = "inventory statuses refreshed"
	MessageSuccessGetDashboardStats   = "dashboard statistics retrieved successfully"

	MessageFailedAddInventoryItem    = "failed to add inventory item"
	MessageFailedUpdateInventoryItem = "failed to update inventory item"
	MessageFailedDeleteInventoryItem = "failed to delete inventory item"
	MessageFailedGetInventoryItems   = "failed to retrieve inventory items"
	MessageFailedConsumeItem         = "failed to mark inventory item as consumed"
	MessageFailedRefreshStatuses     = "failed to refresh inventory statuses"
	MessageFailedGetDashboardStats   = "failed to retrieve dashboard statistics"

	ErrInventoryItemNotFound = errors.New("inventory item not found")
	ErrInvalidExpirationDate = errors.New("invalid expiration date")
	ErrInvalidPurchaseDate   = errors.New("invalid purchase date")
	ErrInvalidQuantity       = errors.New("quantity must be positive")
	ErrItemAlreadyConsumed   = errors.New("inventory item already consumed")
	ErrUnauthorizedAccess    = errors.New("unauthorized access to resource")
)

type (
	AddInventoryItemRequest struct {
		ItemName       string  `json:"item_name" validate:"required"`
		Category       string  `json:"category" validate:"required"`
		Quantity       float64 `json:"quantity" validate:"required,gt=0"`
		Unit           string  `json:"unit" validate:"required"`
		PurchaseDate   string  `json:"purchase_date" validate:"required"`
		ExpirationDate string  `json:"expiration_date" validate:"omitempty"`
		Notes          string  `json:"notes"`
	}

	UpdateInventoryItemRequest struct {
		ItemName       string  `json:"item_name" validate:"omitempty"`
		Category       string  `json:"category" validate:"omitempty"`
		Quantity       float64 `json:"quantity" validate:"omitempty,gt=0"`
		Unit           string  `json:"unit" validate:"omitempty"`
		PurchaseDate   string  `json:"purchase_date" validate:"omitempty"`
		ExpirationDate string  `json:"expiration_date" validate:"omitempty"`
		Notes          string  `json:"notes"`
	}

	InventoryItemResponse struct {
		ID             string     `json:"id"`
		ItemName       string     `json:"item_name"`
		Category       string     `json:"category"`
		Quantity       float64    `json:"quantity"`
		Unit           string     `json:"unit"`
		PurchaseDate   time.Time  `json:"purchase_date"`
		ExpirationDate *time.Time `json:"expiration_date,omitempty"`
		Status         string     `json:"status"`
		Notes          string     `json:"notes,omitempty"`
		CreatedAt      time.Time  `json:"created_at"`
	}

	DashboardStatsResponse struct {
		TotalItems       int64   `json:"total_items"`
		FreshItems       int64   `json:"fresh_items"`
		ExpiringSoon     int64   `json:"expiring_soon_items"`
		ExpiredItems     int64   `json:"expired_items"`
		ConsumedItems    int64   `json:"consumed_items"`
		EstimatedSavings float64 `json:"estimated_savings"`
	}
)
