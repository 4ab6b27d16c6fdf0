package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email         string    `gorm:"uniqueIndex" json:"email"`
	Name          string    `json:"name"`
	HouseholdSize int       `gorm:"default:1" json:"household_size"`
	BudgetRange   string    `gorm:"default:medium" json:"budget_range"` // low, medium, high
	EmailAlerts   bool      `gorm:"default:true" json:"email_alerts"`

	Timestamp
}
