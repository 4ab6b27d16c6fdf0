package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodwise-backend/entities"
)

func TestDetectImbalancesEmptyLogs(t *testing.T) {
	assert.Nil(t, DetectImbalances(DefaultTables(), nil, day(2025, time.June, 15)))
}

func TestDetectImbalances(t *testing.T) {
	today := day(2025, time.June, 15)
	// everything is meat: vegetables fall below half their expected 30%
	// share with high severity, meat shoots past 1.5x its 10% share
	logs := []entities.ConsumptionLog{
		consumed("meat", 10, day(2025, time.June, 10)),
	}

	imbalances := DetectImbalances(DefaultTables(), logs, today)
	require.NotEmpty(t, imbalances)

	byCategory := make(map[string]CategoryImbalance)
	for _, imbalance := range imbalances {
		byCategory[imbalance.Category] = imbalance
	}

	vegetable, ok := byCategory["vegetable"]
	require.True(t, ok)
	assert.Equal(t, "under_consumption", vegetable.Type)
	assert.Equal(t, "high", vegetable.Severity)

	meat, ok := byCategory["meat"]
	require.True(t, ok)
	assert.Equal(t, "over_consumption", meat.Type)
	assert.Equal(t, 100.0, meat.ActualPct)
}

func TestDetectNutrientGaps(t *testing.T) {
	today := day(2025, time.June, 15)
	// a tiny amount of vegetables on one day leaves every tracked nutrient
	// far below its daily requirement
	logs := []entities.ConsumptionLog{
		consumed("vegetable", 1, day(2025, time.June, 10)),
	}

	gaps := DetectNutrientGaps(DefaultTables(), logs, today)
	require.NotEmpty(t, gaps)

	names := make(map[string]NutrientGap)
	for _, gap := range gaps {
		names[gap.Nutrient] = gap
	}

	vitaminC, ok := names["Vitamin C"]
	require.True(t, ok)
	assert.Greater(t, vitaminC.GapPercentage, 20.0)
	assert.Equal(t, 90.0, vitaminC.RecommendedLevel)
	// 50 per 100 units * 1 unit / 1 tracked day
	assert.InDelta(t, 0.5, vitaminC.CurrentLevel, 1e-9)
}

func TestDetectNutrientGapsEmptyLogs(t *testing.T) {
	assert.Empty(t, DetectNutrientGaps(DefaultTables(), nil, day(2025, time.June, 15)))
}
