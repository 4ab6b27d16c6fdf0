package analytics

import (
	"testing"
	"time"

	"foodwise-backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func consumed(category string, quantity float64, date time.Time) entities.ConsumptionLog {
	return entities.ConsumptionLog{
		Category:     category,
		Quantity:     quantity,
		DateConsumed: date,
	}
}

func TestAnalyzePatterns(t *testing.T) {
	today := day(2025, time.June, 15)
	logs := []entities.ConsumptionLog{
		consumed("fruit", 2, day(2025, time.June, 1)),
		consumed("fruit", 1, day(2025, time.June, 5)),
		consumed("fruit", 3, day(2025, time.June, 13)),
		consumed("dairy", 1, day(2025, time.June, 10)),
	}

	patterns := AnalyzePatterns(logs, today)

	fruit := patterns["fruit"]
	assert.Equal(t, 6.0, fruit.TotalConsumed)
	assert.Equal(t, 3, fruit.ConsumptionDays)
	assert.Equal(t, 2.0, fruit.AvgDaily)
	// gaps of 4 and 8 days average to 6
	assert.Equal(t, 6.0, fruit.Frequency)
}

func TestAnalyzePatternsSingleDayFrequency(t *testing.T) {
	today := day(2025, time.June, 15)
	logs := []entities.ConsumptionLog{
		consumed("dairy", 2, day(2025, time.June, 10)),
	}

	patterns := AnalyzePatterns(logs, today)

	assert.Equal(t, float64(PatternLookbackDays), patterns["dairy"].Frequency)
}

func TestAnalyzePatternsIgnoresLogsOutsideWindow(t *testing.T) {
	today := day(2025, time.June, 15)
	logs := []entities.ConsumptionLog{
		consumed("vegetable", 5, day(2025, time.May, 1)),
	}

	patterns := AnalyzePatterns(logs, today)

	assert.Empty(t, patterns)
}

func TestAnalyzeWeeklyTrendsFlagsDominantCategory(t *testing.T) {
	today := day(2025, time.June, 15)
	logs := []entities.ConsumptionLog{
		// Monday dominated by vegetables
		consumed("vegetable", 5, day(2025, time.June, 2)),
		consumed("grain", 1, day(2025, time.June, 2)),
		// Tuesday evenly split, below the dominance threshold
		consumed("fruit", 1, day(2025, time.June, 3)),
		consumed("grain", 1, day(2025, time.June, 3)),
		consumed("dairy", 1, day(2025, time.June, 3)),
	}

	trends := AnalyzeWeeklyTrends(logs, today)

	require.Len(t, trends.Patterns, 1)
	assert.Equal(t, "Monday", trends.Patterns[0].Day)
	assert.Equal(t, "vegetable", trends.Patterns[0].Category)
	assert.InDelta(t, 83.33, trends.Patterns[0].Percentage, 0.01)
	assert.Equal(t, "High vegetable consumption on Mondays", trends.Summary)

	assert.Equal(t, 5.0, trends.Heatmap["Monday"]["vegetable"])
	assert.Equal(t, 1.0, trends.Heatmap["Tuesday"]["dairy"])
}

func TestAnalyzeWeeklyTrendsNoData(t *testing.T) {
	trends := AnalyzeWeeklyTrends(nil, day(2025, time.June, 15))

	assert.Empty(t, trends.Patterns)
	assert.Equal(t, "No significant weekly trends detected. Your consumption is fairly consistent.", trends.Summary)
}
