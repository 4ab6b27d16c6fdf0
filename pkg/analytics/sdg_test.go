package analytics

import (
	"testing"
	"time"

	"foodwise-backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMondayOf(t *testing.T) {
	monday := day(2025, time.June, 9)

	assert.Equal(t, monday, MondayOf(day(2025, time.June, 9)))
	assert.Equal(t, monday, MondayOf(day(2025, time.June, 11)))
	assert.Equal(t, monday, MondayOf(day(2025, time.June, 15))) // Sunday
	assert.Equal(t, monday.AddDate(0, 0, 7), MondayOf(day(2025, time.June, 16)))
}

func TestComputeOverallIsWeightedSum(t *testing.T) {
	now := day(2025, time.June, 15)
	scorer := NewSDGScorer(DefaultTables())

	items := []entities.InventoryItem{
		inventoryItem("Strawberries", "fruit", 1, "kg",
			day(2025, time.June, 1), expiryOn(day(2025, time.June, 13)), entities.StatusExpired),
		inventoryItem("Milk", "dairy", 1, "l",
			day(2025, time.June, 10), expiryOn(day(2025, time.June, 14)), entities.StatusConsumed),
	}
	logs := []entities.ConsumptionLog{
		consumed("vegetable", 2, day(2025, time.June, 10)),
		consumed("fruit", 1, day(2025, time.June, 11)),
		consumed("grain", 1, day(2025, time.June, 12)),
	}

	score := scorer.Compute(items, logs, now, now, nil)

	expected := round2(score.WasteScore*0.40 + score.NutritionScore*0.35 + score.SustainabilityScore*0.25)
	assert.Equal(t, expected, score.OverallScore)

	for _, component := range []float64{score.OverallScore, score.WasteScore, score.NutritionScore, score.SustainabilityScore} {
		assert.GreaterOrEqual(t, component, 0.0)
		assert.LessOrEqual(t, component, 100.0)
	}
	assert.Equal(t, day(2025, time.June, 9), score.WeekStartDate)
}

func TestComputeZeroWasteScoresFull(t *testing.T) {
	now := day(2025, time.June, 15)
	scorer := NewSDGScorer(DefaultTables())

	score := scorer.Compute(nil, nil, now, now, nil)

	// tier 100 for zero waste plus the zero-waste trend bonus, clamped
	assert.Equal(t, 100.0, score.WasteScore)
}

func TestComputeIsIdempotent(t *testing.T) {
	now := day(2025, time.June, 15)
	scorer := NewSDGScorer(DefaultTables())

	items := []entities.InventoryItem{
		inventoryItem("Bread", "grain", 1, "piece",
			day(2025, time.June, 5), expiryOn(day(2025, time.June, 12)), entities.StatusExpired),
	}
	logs := []entities.ConsumptionLog{
		consumed("dairy", 1, day(2025, time.June, 9)),
	}

	first := scorer.Compute(items, logs, now, now, nil)
	second := scorer.Compute(items, logs, now, now, nil)

	assert.Equal(t, first, second)
}

func TestComputeImprovementTrend(t *testing.T) {
	now := day(2025, time.June, 15)
	scorer := NewSDGScorer(DefaultTables())

	fresh := scorer.Compute(nil, nil, now, now, nil)
	assert.Equal(t, "new", fresh.Improvement.Trend)
	assert.Nil(t, fresh.Improvement.OverallChange)

	lower := fresh.OverallScore - 10
	improving := scorer.Compute(nil, nil, now, now, &lower)
	require.NotNil(t, improving.Improvement.OverallChange)
	assert.Equal(t, "improving", improving.Improvement.Trend)
	assert.Equal(t, 10.0, *improving.Improvement.OverallChange)

	higher := fresh.OverallScore + 10
	declining := scorer.Compute(nil, nil, now, now, &higher)
	assert.Equal(t, "declining", declining.Improvement.Trend)

	same := fresh.OverallScore
	stable := scorer.Compute(nil, nil, now, now, &same)
	assert.Equal(t, "stable", stable.Improvement.Trend)
}

func TestComputeProducesInsightsAndSteps(t *testing.T) {
	now := day(2025, time.June, 15)
	scorer := NewSDGScorer(DefaultTables())

	items := []entities.InventoryItem{
		inventoryItem("Roast", "meat", 2, "kg",
			day(2025, time.June, 1), expiryOn(day(2025, time.June, 12)), entities.StatusExpired),
	}

	score := scorer.Compute(items, nil, now, now, nil)

	assert.NotEmpty(t, score.Insights)
	assert.NotEmpty(t, score.ActionableSteps)
	assert.LessOrEqual(t, len(score.ActionableSteps), 6)
}
