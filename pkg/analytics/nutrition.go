package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"foodwise-backend/entities"
)

type (
	// CategoryImbalance flags a category consumed well outside the expected
	// distribution for a balanced diet.
	CategoryImbalance struct {
		Category    string
		Type        string // under_consumption, over_consumption
		ActualPct   float64
		ExpectedPct float64
		GapPct      float64
		Severity    string // high, medium
		Description string
	}

	NutrientGap struct {
		Nutrient         string
		CurrentLevel     float64
		RecommendedLevel float64
		GapPercentage    float64
	}
)

// DetectImbalances compares the last 30 days of consumption against the
// expected category distribution. Under-consumption is flagged below half of
// the expected share, over-consumption above one and a half times it.
func DetectImbalances(tables Tables, logs []entities.ConsumptionLog, today time.Time) []CategoryImbalance {
	windowStart := truncateToDay(today).AddDate(0, 0, -PatternLookbackDays)

	categoryTotals := make(map[string]float64)
	var totalQuantity float64
	for _, log := range logs {
		if truncateToDay(log.DateConsumed).Before(windowStart) {
			continue
		}
		categoryTotals[log.Category] += log.Quantity
		totalQuantity += log.Quantity
	}

	if totalQuantity == 0 {
		return nil
	}

	categories := make([]string, 0, len(tables.ExpectedDistribution))
	for category := range tables.ExpectedDistribution {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var imbalances []CategoryImbalance
	for _, category := range categories {
		expected := tables.ExpectedDistribution[category]
		actualPct := categoryTotals[category] / totalQuantity * 100
		expectedPct := expected * 100

		switch {
		case actualPct < expectedPct*0.5:
			severity := "medium"
			if actualPct < expectedPct*0.3 {
				severity = "high"
			}
			imbalances = append(imbalances, CategoryImbalance{
				Category:    category,
				Type:        "under_consumption",
				ActualPct:   actualPct,
				ExpectedPct: expectedPct,
				GapPct:      expectedPct - actualPct,
				Severity:    severity,
				Description: fmt.Sprintf("Low %s consumption (%.1f%% vs %.1f%% recommended)", category, actualPct, expectedPct),
			})
		case actualPct > expectedPct*1.5:
			imbalances = append(imbalances, CategoryImbalance{
				Category:    category,
				Type:        "over_consumption",
				ActualPct:   actualPct,
				ExpectedPct: expectedPct,
				GapPct:      actualPct - expectedPct,
				Severity:    "medium",
				Description: fmt.Sprintf("High %s consumption (%.1f%% vs %.1f%% recommended)", category, actualPct, expectedPct),
			})
		}
	}

	return imbalances
}

// DetectNutrientGaps estimates average daily nutrient intake from the last
// 30 days of logs and reports nutrients more than 20% below requirement.
func DetectNutrientGaps(tables Tables, logs []entities.ConsumptionLog, today time.Time) []NutrientGap {
	windowStart := truncateToDay(today).AddDate(0, 0, -PatternLookbackDays)

	nutrientTotals := make(map[string]float64)
	trackedDays := make(map[time.Time]struct{})
	for _, log := range logs {
		day := truncateToDay(log.DateConsumed)
		if day.Before(windowStart) {
			continue
		}
		trackedDays[day] = struct{}{}

		nutrients, ok := tables.NutrientDatabase[log.Category]
		if !ok {
			continue
		}
		for nutrient, perUnit := range nutrients {
			nutrientTotals[nutrient] += perUnit * log.Quantity / 100
		}
	}

	days := len(trackedDays)
	if days == 0 {
		days = 1
	}

	nutrients := make([]string, 0, len(nutrientTotals))
	for nutrient := range nutrientTotals {
		nutrients = append(nutrients, nutrient)
	}
	sort.Strings(nutrients)

	var gaps []NutrientGap
	for _, nutrient := range nutrients {
		required, ok := tables.DailyRequirements[nutrient]
		if !ok || required <= 0 {
			continue
		}
		dailyAvg := nutrientTotals[nutrient] / float64(days)
		gapPct := math.Max(0, (required-dailyAvg)/required*100)
		if gapPct > 20 {
			gaps = append(gaps, NutrientGap{
				Nutrient:         displayNutrient(nutrient),
				CurrentLevel:     dailyAvg,
				RecommendedLevel: required,
				GapPercentage:    gapPct,
			})
		}
	}

	return gaps
}

func displayNutrient(nutrient string) string {
	parts := strings.Split(nutrient, "_")
	for i, part := range parts {
		parts[i] = titleCase(part)
	}
	return strings.Join(parts, " ")
}
