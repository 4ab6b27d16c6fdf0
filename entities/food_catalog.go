package entities

import (
	"github.com/google/uuid"
)

// FoodCatalogItem is seeded reference data about common food items, not
// user inventory. The meal optimizer shops from this table.
type FoodCatalogItem struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name                  string    `gorm:"uniqueIndex" json:"name"`
	Category              string    `gorm:"index" json:"category"`
	TypicalExpirationDays int       `json:"typical_expiration_days"`
	SampleCostPerUnit     float64   `json:"sample_cost_per_unit"`
	Unit                  string    `json:"unit"`
	Description           string    `json:"description,omitempty"`
	StorageTips           string    `json:"storage_tips,omitempty"`

	Timestamp
}
