package analytics

import (
	"testing"
	"time"

	"foodwise-backend/domain"
	"foodwise-backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateWeeklyTotalIsExactSum(t *testing.T) {
	now := day(2025, time.June, 15)
	estimator := NewWasteEstimator(DefaultTables())

	items := []entities.InventoryItem{
		// expired inside the window, purchased before it: expired part only
		inventoryItem("Strawberries", "fruit", 1, "kg",
			day(2025, time.June, 1), expiryOn(day(2025, time.June, 13)), entities.StatusExpired),
		// purchased inside the window, expiring in 2 days: pattern part only
		inventoryItem("Milk", "dairy", 1, "l",
			day(2025, time.June, 10), expiryOn(day(2025, time.June, 17)), entities.StatusExpiringSoon),
	}

	estimate := estimator.EstimateWeekly(items, nil, now)

	assert.Equal(t, domain.PeriodWeek, estimate.Period)
	assert.Equal(t, 1000.0, estimate.ExpiredWasteGrams)
	assert.Equal(t, 3.00, estimate.ExpiredWasteCost)
	// dairy waste rate 0.15, near-expiry factor 1.3
	assert.InDelta(t, 195.0, estimate.PatternWasteGrams, 1e-9)
	assert.InDelta(t, 0.78, estimate.PatternWasteCost, 1e-9)

	assert.Equal(t, estimate.ExpiredWasteGrams+estimate.PatternWasteGrams, estimate.TotalWasteGrams)
	assert.Equal(t, estimate.ExpiredWasteCost+estimate.PatternWasteCost, estimate.TotalWasteCost)

	assert.Equal(t, 1000.0, estimate.ByCategory["fruit"].Grams)
	assert.InDelta(t, 195.0, estimate.ByCategory["dairy"].Grams, 1e-9)
}

func TestEstimateWeeklyInfrequentConsumptionRaisesRate(t *testing.T) {
	now := day(2025, time.June, 15)
	estimator := NewWasteEstimator(DefaultTables())

	items := []entities.InventoryItem{
		inventoryItem("Cheese", "dairy", 1, "kg",
			day(2025, time.June, 10), expiryOn(day(2025, time.June, 25)), entities.StatusExpiringSoon),
	}
	patterns := map[string]CategoryPattern{
		"dairy": {Frequency: 10},
	}

	base := estimator.EstimateWeekly(items, nil, now)
	adjusted := estimator.EstimateWeekly(items, patterns, now)

	assert.InDelta(t, base.PatternWasteGrams*1.2, adjusted.PatternWasteGrams, 1e-9)
}

func TestTrendFactorDefaultsToOne(t *testing.T) {
	now := day(2025, time.June, 15)
	estimator := NewWasteEstimator(DefaultTables())

	assert.Equal(t, 1.0, estimator.TrendFactor(nil, now))

	// waste last week but none the week before still yields the default
	items := []entities.InventoryItem{
		inventoryItem("Lettuce", "vegetable", 1, "kg",
			day(2025, time.June, 1), expiryOn(day(2025, time.June, 10)), entities.StatusExpired),
	}
	assert.Equal(t, 1.0, estimator.TrendFactor(items, now))
}

func TestTrendFactorClamped(t *testing.T) {
	now := day(2025, time.June, 15)
	estimator := NewWasteEstimator(DefaultTables())

	rising := []entities.InventoryItem{
		inventoryItem("Old", "vegetable", 1, "kg",
			day(2025, time.May, 25), expiryOn(day(2025, time.June, 3)), entities.StatusExpired),
		inventoryItem("New", "vegetable", 2, "kg",
			day(2025, time.June, 1), expiryOn(day(2025, time.June, 10)), entities.StatusExpired),
	}
	assert.Equal(t, 1.1, estimator.TrendFactor(rising, now))

	falling := []entities.InventoryItem{
		inventoryItem("Old", "vegetable", 2, "kg",
			day(2025, time.May, 25), expiryOn(day(2025, time.June, 3)), entities.StatusExpired),
		inventoryItem("New", "vegetable", 1, "kg",
			day(2025, time.June, 1), expiryOn(day(2025, time.June, 10)), entities.StatusExpired),
	}
	assert.Equal(t, 0.9, estimator.TrendFactor(falling, now))
}

func TestEstimateMonthScalesWeekly(t *testing.T) {
	now := day(2025, time.June, 15)
	estimator := NewWasteEstimator(DefaultTables())

	items := []entities.InventoryItem{
		inventoryItem("Strawberries", "fruit", 1, "kg",
			day(2025, time.June, 1), expiryOn(day(2025, time.June, 13)), entities.StatusExpired),
	}

	weekly := estimator.EstimateWeekly(items, nil, now)
	monthly := estimator.Estimate(items, nil, now, domain.PeriodMonth)

	assert.Equal(t, domain.PeriodMonth, monthly.Period)
	assert.InDelta(t, weekly.TotalWasteGrams*4*weekly.TrendFactor, monthly.TotalWasteGrams, 1e-9)
	assert.InDelta(t, monthly.TotalWasteGrams-monthly.ExpiredWasteGrams, monthly.PatternWasteGrams, 1e-9)
	// the expired component reports actual in-window waste
	assert.Equal(t, 1000.0, monthly.ExpiredWasteGrams)
}

func TestProjectionCumulativeSums(t *testing.T) {
	now := day(2025, time.June, 15)
	estimator := NewWasteEstimator(DefaultTables())

	items := []entities.InventoryItem{
		inventoryItem("Strawberries", "fruit", 1, "kg",
			day(2025, time.June, 1), expiryOn(day(2025, time.June, 13)), entities.StatusExpired),
	}

	projection := estimator.Projection(items, nil, now, 4)

	require.Len(t, projection, 4)
	var runningGrams float64
	for i, week := range projection {
		assert.Equal(t, i+1, week.Week)
		// trend factor is 1.0 here, so every week projects the weekly total
		assert.InDelta(t, 1000.0, week.ProjectedGrams, 1e-9)
		runningGrams += week.ProjectedGrams
		assert.InDelta(t, runningGrams, week.CumulativeGrams, 1e-9)
	}
}

func TestCompareToCommunity(t *testing.T) {
	now := day(2025, time.June, 15)
	estimator := NewWasteEstimator(DefaultTables())

	comparison := estimator.CompareToCommunity(nil, nil, now, domain.PeriodWeek)

	assert.Equal(t, domain.PeriodWeek, comparison.Period)
	assert.Equal(t, 0.0, comparison.UserGrams)
	assert.Equal(t, 500.0, comparison.CommunityGrams)
	assert.Equal(t, -100.0, comparison.PercentageDiff)
	assert.Equal(t, "better", comparison.Status)

	wasteful := []entities.InventoryItem{
		inventoryItem("Roast", "meat", 1, "kg",
			day(2025, time.June, 1), expiryOn(day(2025, time.June, 13)), entities.StatusExpired),
	}
	comparison = estimator.CompareToCommunity(wasteful, nil, now, domain.PeriodWeek)
	assert.Equal(t, "worse", comparison.Status)
}
