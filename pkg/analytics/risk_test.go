package analytics

import (
	"testing"
	"time"

	"foodwise-backend/domain"
	"foodwise-backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inventoryItem(name, category string, quantity float64, unit string, purchase time.Time, expiry *time.Time, status string) entities.InventoryItem {
	return entities.InventoryItem{
		ItemName:       name,
		Category:       category,
		Quantity:       quantity,
		Unit:           unit,
		PurchaseDate:   purchase,
		ExpirationDate: expiry,
		Status:         status,
	}
}

func expiryOn(t time.Time) *time.Time {
	return &t
}

func TestPredictDairyWorkedExample(t *testing.T) {
	// winter month, so the dairy seasonal factor of 0.9 applies
	now := day(2025, time.January, 15)
	scorer := NewRiskScorer(DefaultTables())

	items := []entities.InventoryItem{
		inventoryItem("Milk", "dairy", 1, "l",
			now.AddDate(0, 0, -5), expiryOn(now.AddDate(0, 0, 1)), entities.StatusExpiringSoon),
	}
	patterns := map[string]CategoryPattern{
		"dairy": {AvgDaily: 0.2, Frequency: 2},
	}

	predictions := scorer.Predict(items, patterns, now, 1, DefaultRiskDaysAhead)

	require.Len(t, predictions, 1)
	// 90*1.4*0.9 + 20 = 133.4, clamped to 100
	assert.Equal(t, 100.0, predictions[0].RiskScore)
	assert.Equal(t, domain.PriorityCritical, predictions[0].Priority)
	assert.NotEmpty(t, predictions[0].Reasoning)
	assert.Contains(t, predictions[0].RecommendedAction, "Milk")
}

func TestPredictTimeRiskTiers(t *testing.T) {
	now := day(2025, time.January, 15)
	scorer := NewRiskScorer(DefaultTables())

	// category "other" has multiplier 1.0 and no seasonal sensitivity, so
	// the risk score equals the raw time risk.
	cases := []struct {
		name      string
		daysUntil int
		want      float64
	}{
		{"already expired", -1, 100},
		{"expires today", 0, 90},
		{"expires tomorrow", 1, 90},
		{"expires in three days", 3, 75},
		{"expires in seven days", 7, 60},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := []entities.InventoryItem{
				inventoryItem("Thing", "other", 1, "piece",
					now.AddDate(0, 0, -1), expiryOn(now.AddDate(0, 0, tc.daysUntil)), entities.StatusFresh),
			}

			predictions := scorer.Predict(items, nil, now, 1, DefaultRiskDaysAhead)

			require.Len(t, predictions, 1)
			assert.Equal(t, tc.want, predictions[0].RiskScore)
		})
	}
}

func TestPredictHouseholdAdjustment(t *testing.T) {
	now := day(2025, time.January, 15)
	scorer := NewRiskScorer(DefaultTables())

	items := []entities.InventoryItem{
		inventoryItem("Thing", "other", 1, "piece",
			now.AddDate(0, 0, -1), expiryOn(now.AddDate(0, 0, 5)), entities.StatusFresh),
	}

	solo := scorer.Predict(items, nil, now, 1, DefaultRiskDaysAhead)
	family := scorer.Predict(items, nil, now, 3, DefaultRiskDaysAhead)

	require.Len(t, solo, 1)
	require.Len(t, family, 1)
	assert.Equal(t, 60.0, solo[0].RiskScore)
	assert.Equal(t, 50.0, family[0].RiskScore)
}

func TestPredictSkipsConsumedAndUndatedItems(t *testing.T) {
	now := day(2025, time.January, 15)
	scorer := NewRiskScorer(DefaultTables())

	items := []entities.InventoryItem{
		inventoryItem("Eaten", "fruit", 1, "piece",
			now.AddDate(0, 0, -3), expiryOn(now.AddDate(0, 0, 1)), entities.StatusConsumed),
		inventoryItem("No expiry", "grain", 1, "kg",
			now.AddDate(0, 0, -3), nil, entities.StatusFresh),
		inventoryItem("Far out", "canned", 1, "piece",
			now.AddDate(0, 0, -3), expiryOn(now.AddDate(0, 0, 30)), entities.StatusFresh),
	}

	predictions := scorer.Predict(items, nil, now, 1, DefaultRiskDaysAhead)

	assert.Empty(t, predictions)
}

func TestPredictOrdersByRankingScore(t *testing.T) {
	now := day(2025, time.January, 15)
	scorer := NewRiskScorer(DefaultTables())

	items := []entities.InventoryItem{
		inventoryItem("Later", "grain", 1, "kg",
			now.AddDate(0, 0, -1), expiryOn(now.AddDate(0, 0, 7)), entities.StatusFresh),
		inventoryItem("Urgent", "meat", 1, "kg",
			now.AddDate(0, 0, -6), expiryOn(now), entities.StatusExpiringSoon),
	}

	predictions := scorer.Predict(items, nil, now, 1, DefaultRiskDaysAhead)

	require.Len(t, predictions, 2)
	assert.Equal(t, "Urgent", predictions[0].ItemName)
	assert.GreaterOrEqual(t, predictions[0].AIRankingScore, predictions[1].AIRankingScore)
	for _, p := range predictions {
		assert.GreaterOrEqual(t, p.RiskScore, 0.0)
		assert.LessOrEqual(t, p.RiskScore, 100.0)
	}
}

func TestPriorityForScoreBoundaries(t *testing.T) {
	assert.Equal(t, domain.PriorityCritical, PriorityForScore(80))
	assert.Equal(t, domain.PriorityHigh, PriorityForScore(79.99))
	assert.Equal(t, domain.PriorityHigh, PriorityForScore(60))
	assert.Equal(t, domain.PriorityMedium, PriorityForScore(59.99))
	assert.Equal(t, domain.PriorityMedium, PriorityForScore(40))
	assert.Equal(t, domain.PriorityLow, PriorityForScore(39.99))
}

func TestSeasonForMonth(t *testing.T) {
	assert.Equal(t, "winter", SeasonForMonth(time.January))
	assert.Equal(t, "spring", SeasonForMonth(time.April))
	assert.Equal(t, "summer", SeasonForMonth(time.July))
	assert.Equal(t, "autumn", SeasonForMonth(time.October))
	assert.Equal(t, "winter", SeasonForMonth(time.December))
}
