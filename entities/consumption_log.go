package entities

import (
	"time"

	"github.com/google/uuid"
)

type ConsumptionLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `gorm:"index:idx_consumption_user_date" json:"user_id"`
	ItemName     string    `json:"item_name"`
	Category     string    `gorm:"index" json:"category"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	DateConsumed time.Time `gorm:"type:date;index:idx_consumption_user_date" json:"date_consumed"`
	Notes        string    `json:"notes,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
