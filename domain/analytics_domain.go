package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRiskPredictions = "expiration risk predictions retrieved successfully"
	MessageSuccessGetAlerts          = "high risk alerts retrieved successfully"
	MessageSuccessGetWasteEstimate   = "waste estimate retrieved successfully"
	MessageSuccessGetProjection      = "waste projection retrieved successfully"
	MessageSuccessGetComparison      = "community comparison retrieved successfully"
	MessageSuccessGetPatterns        = "consumption patterns retrieved successfully"
	MessageSuccessGetTrends          = "weekly trends retrieved successfully"
	MessageSuccessGetSDGScore        = "sdg score computed successfully"
	MessageSuccessSaveSDGScore       = "weekly sdg score saved successfully"
	MessageSuccessGetSDGHistory      = "sdg score history retrieved successfully"

	MessageFailedGetRiskPredictions = "failed to retrieve expiration risk predictions"
	MessageFailedGetAlerts          = "failed to retrieve high risk alerts"
	MessageFailedGetWasteEstimate   = "failed to retrieve waste estimate"
	MessageFailedGetProjection      = "failed to retrieve waste projection"
	MessageFailedGetComparison      = "failed to retrieve community comparison"
	MessageFailedGetPatterns        = "failed to retrieve consumption patterns"
	MessageFailedGetTrends          = "failed to retrieve weekly trends"
	MessageFailedGetSDGScore        = "failed to compute sdg score"
	MessageFailedSaveSDGScore       = "failed to save weekly sdg score"
	MessageFailedGetSDGHistory      = "failed to retrieve sdg score history"

	ErrInvalidPeriod    = errors.New("period must be week, month or year")
	ErrInvalidWeekStart = errors.New("invalid week start date")
)

// Priority tiers for risk predictions.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

// Waste estimate periods.
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

type (
	// RiskPrediction is the computed risk for one inventory item. Reasoning
	// clauses are ordered; callers display them pipe-joined.
	RiskPrediction struct {
		InventoryItemID   string     `json:"inventory_item_id"`
		ItemName          string     `json:"item_name"`
		Category          string     `json:"category"`
		ExpirationDate    *time.Time `json:"expiration_date,omitempty"`
		DaysUntilExpiry   int        `json:"days_until_expiry"`
		RiskScore         float64    `json:"risk_score"`
		AIRankingScore    float64    `json:"ai_ranking_score"`
		Priority          string     `json:"priority"`
		Reasoning         []string   `json:"reasoning"`
		RecommendedAction string     `json:"recommended_action"`
	}

	RiskAlert struct {
		Type              string     `json:"type"` // priority tier
		InventoryItemID   string     `json:"inventory_item_id"`
		ItemName          string     `json:"item_name"`
		ExpirationDate    *time.Time `json:"expiration_date,omitempty"`
		DaysUntilExpiry   int        `json:"days_until_expiry"`
		RiskScore         float64    `json:"risk_score"`
		RecommendedAction string     `json:"recommended_action"`
		Reasoning         []string   `json:"reasoning"`
	}

	CategoryWaste struct {
		Grams float64 `json:"grams"`
		Cost  float64 `json:"cost"`
	}

	// WasteEstimate reports estimated waste for a period. For the weekly
	// period totals are the exact sum of the expired and pattern parts; for
	// month and year the totals are the weekly total scaled and
	// trend-adjusted, while the expired fields report the actual expired
	// waste observed inside the longer window.
	WasteEstimate struct {
		Period            string                   `json:"period"`
		WindowStart       time.Time                `json:"window_start"`
		ExpiredWasteGrams float64                  `json:"expired_waste_grams"`
		ExpiredWasteCost  float64                  `json:"expired_waste_cost"`
		PatternWasteGrams float64                  `json:"pattern_waste_grams"`
		PatternWasteCost  float64                  `json:"pattern_waste_cost"`
		TotalWasteGrams   float64                  `json:"total_waste_grams"`
		TotalWasteCost    float64                  `json:"total_waste_cost"`
		TrendFactor       float64                  `json:"trend_factor"`
		ByCategory        map[string]CategoryWaste `json:"by_category"`
	}

	WasteProjectionWeek struct {
		Week            int       `json:"week"`
		Date            time.Time `json:"date"`
		ProjectedGrams  float64   `json:"projected_grams"`
		ProjectedCost   float64   `json:"projected_cost"`
		CumulativeGrams float64   `json:"cumulative_grams"`
		CumulativeCost  float64   `json:"cumulative_cost"`
	}

	CommunityComparison struct {
		Period         string  `json:"period"`
		UserGrams      float64 `json:"user_grams"`
		CommunityGrams float64 `json:"community_grams"`
		UserCost       float64 `json:"user_cost"`
		CommunityCost  float64 `json:"community_cost"`
		PercentageDiff float64 `json:"percentage_difference"`
		Status         string  `json:"status"` // better, worse
	}

	CategoryPatternResponse struct {
		Category        string  `json:"category"`
		TotalConsumed   float64 `json:"total_consumed"`
		ConsumptionDays int     `json:"consumption_days"`
		AvgDaily        float64 `json:"avg_daily"`
		Frequency       float64 `json:"frequency"`
	}

	WeekdayPattern struct {
		Day         string  `json:"day"`
		Category    string  `json:"category"`
		Percentage  float64 `json:"percentage"`
		Description string  `json:"description"`
	}

	WeeklyTrendsResponse struct {
		Patterns []WeekdayPattern              `json:"patterns"`
		Heatmap  map[string]map[string]float64 `json:"heatmap_data"`
		Summary  string                        `json:"summary"`
	}

	SDGInsight struct {
		Type                 string `json:"type"` // success, warning, info
		Category             string `json:"category"`
		Message              string `json:"message"`
		Impact               string `json:"impact"`
		ImprovementPotential string `json:"improvement_potential,omitempty"`
	}

	SDGActionStep struct {
		Priority            string `json:"priority"`
		Action              string `json:"action"`
		ExpectedImprovement string `json:"expected_improvement"`
		Category            string `json:"category"`
		Specific            bool   `json:"specific"`
	}

	SDGImprovement struct {
		OverallChange        *float64 `json:"overall_change"`
		OverallPercentChange *float64 `json:"overall_percent_change"`
		Trend                string   `json:"trend"` // new, improving, declining, stable
	}

	SDGScoreResponse struct {
		WeekStartDate       time.Time       `json:"week_start_date"`
		OverallScore        float64         `json:"overall_score"`
		WasteScore          float64         `json:"waste_score"`
		NutritionScore      float64         `json:"nutrition_score"`
		SustainabilityScore float64         `json:"sustainability_score"`
		Insights            []SDGInsight    `json:"insights"`
		ActionableSteps     []SDGActionStep `json:"actionable_steps"`
		Improvement         SDGImprovement  `json:"improvement"`
	}
)
