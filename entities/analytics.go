package entities

import (
	"time"

	"github.com/google/uuid"
)

// RiskPrediction is a snapshot of a computed expiration risk. Scores are
// recomputable, so rows are upserted last-write-wins on
// (user, inventory item, predicted_for).
type RiskPrediction struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID            uuid.UUID `gorm:"uniqueIndex:idx_risk_user_item_date" json:"user_id"`
	InventoryItemID   uuid.UUID `gorm:"uniqueIndex:idx_risk_user_item_date" json:"inventory_item_id"`
	ItemName          string    `json:"item_name"`
	Category          string    `json:"category"`
	RiskScore         float64   `json:"risk_score"`
	AIRankingScore    float64   `json:"ai_ranking_score"`
	Priority          string    `json:"priority"` // critical, high, medium, low
	Reasoning         string    `gorm:"type:text" json:"reasoning"`
	RecommendedAction string    `json:"recommended_action"`
	PredictedFor      time.Time `gorm:"type:date;uniqueIndex:idx_risk_user_item_date" json:"predicted_for"`

	User          *User          `gorm:"foreignKey:UserID"`
	InventoryItem *InventoryItem `gorm:"foreignKey:InventoryItemID"`
	Timestamp
}

// WasteSnapshot keeps a point-in-time waste estimate; never the source of
// truth, only a record of what was reported. One row per
// (user, period, capture day), recomputes upsert.
type WasteSnapshot struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"uniqueIndex:idx_waste_user_period_date" json:"user_id"`
	Period      string    `gorm:"uniqueIndex:idx_waste_user_period_date" json:"period"` // week, month, year
	WasteGrams  float64   `json:"waste_grams"`
	WasteCost   float64   `json:"waste_cost"`
	TrendFactor float64   `json:"trend_factor"`
	ByCategory  string    `gorm:"type:text" json:"by_category"` // JSON breakdown
	CapturedOn  time.Time `gorm:"type:date;uniqueIndex:idx_waste_user_period_date" json:"captured_on"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

// SDGImpactScore stores one weekly score per user. Week start dates are
// Monday-aligned and the (user, week) pair is unique; recomputes upsert.
type SDGImpactScore struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID              uuid.UUID `gorm:"uniqueIndex:idx_sdg_user_week" json:"user_id"`
	WeekStartDate       time.Time `gorm:"type:date;uniqueIndex:idx_sdg_user_week" json:"week_start_date"`
	OverallScore        float64   `json:"overall_score"`
	WasteScore          float64   `json:"waste_score"`
	NutritionScore      float64   `json:"nutrition_score"`
	SustainabilityScore float64   `json:"sustainability_score"`
	Insights            string    `gorm:"type:text" json:"insights"`         // JSON list
	ActionableSteps     string    `gorm:"type:text" json:"actionable_steps"` // JSON list

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
