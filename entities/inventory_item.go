package entities

import (
	"time"

	"github.com/google/uuid"
)

type InventoryItem struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID  `gorm:"index:idx_inventory_user_status" json:"user_id"`
	ItemName       string     `json:"item_name"`
	Category       string     `gorm:"index" json:"category"`
	Quantity       float64    `json:"quantity"`
	Unit           string     `json:"unit"`
	PurchaseDate   time.Time  `gorm:"type:date" json:"purchase_date"`
	ExpirationDate *time.Time `gorm:"type:date;index" json:"expiration_date,omitempty"`
	Status         string     `gorm:"index:idx_inventory_user_status" json:"status"` // fresh, expiring_soon, expired, consumed
	Notes          string     `json:"notes,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

// DaysUntilExpiry returns whole days from today to the expiration date,
// negative when already past. ok is false when no expiration date is set.
func (i *InventoryItem) DaysUntilExpiry(today time.Time) (int, bool) {
	if i.ExpirationDate == nil {
		return 0, false
	}
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	e := *i.ExpirationDate
	e = time.Date(e.Year(), e.Month(), e.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(t).Hours() / 24), true
}

// DeriveStatus recomputes the lifecycle status from the expiration date.
// Consumed items are terminal and keep their status; items without an
// expiration date stay fresh.
func DeriveStatus(current string, expirationDate *time.Time, today time.Time) string {
	if current == StatusConsumed {
		return StatusConsumed
	}
	if expirationDate == nil {
		return StatusFresh
	}
	item := InventoryItem{ExpirationDate: expirationDate}
	days, _ := item.DaysUntilExpiry(today)
	switch {
	case days < 0:
		return StatusExpired
	case days <= 3:
		return StatusExpiringSoon
	default:
		return StatusFresh
	}
}
