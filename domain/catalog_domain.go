package domain

import (
	"errors"
)

var (
	MessageSuccessGetCatalog = "food catalog retrieved successfully"

	MessageFailedGetCatalog = "failed to retrieve food catalog"

	ErrCatalogItemNotFound = errors.New("food catalog item not found")
)

type CatalogItemResponse struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	Category              string  `json:"category"`
	TypicalExpirationDays int     `json:"typical_expiration_days"`
	SampleCostPerUnit     float64 `json:"sample_cost_per_unit"`
	Unit                  string  `json:"unit"`
	Description           string  `json:"description,omitempty"`
	StorageTips           string  `json:"storage_tips,omitempty"`
}
