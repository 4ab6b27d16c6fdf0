package entities

import (
	"time"
)

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
}

// Food categories shared by inventory, consumption logs and the catalog.
const (
	CategoryVegetable = "vegetable"
	CategoryFruit     = "fruit"
	CategoryDairy     = "dairy"
	CategoryMeat      = "meat"
	CategoryGrain     = "grain"
	CategoryBeverage  = "beverage"
	CategorySnack     = "snack"
	CategoryFrozen    = "frozen"
	CategoryCanned    = "canned"
	CategoryOther     = "other"
)

// Inventory item lifecycle. Consumed is terminal; the other three are
// recomputed from the expiration date.
const (
	StatusFresh        = "fresh"
	StatusExpiringSoon = "expiring_soon"
	StatusExpired      = "expired"
	StatusConsumed     = "consumed"
)
