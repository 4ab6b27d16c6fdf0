package analytics

import (
	"math"
	"time"

	"foodwise-backend/domain"
	"foodwise-backend/entities"
)

const (
	trendFactorMin = 0.9
	trendFactorMax = 1.1

	// Pattern waste rate adjustments.
	infrequentConsumptionFactor = 1.2
	nearExpiryFactor            = 1.3
)

type WasteEstimator struct {
	tables Tables
}

func NewWasteEstimator(tables Tables) *WasteEstimator {
	return &WasteEstimator{tables: tables}
}

// Estimate computes the waste estimate for the given period. The weekly
// estimate is exact over its window; month and year scale the weekly total by
// 4 and 48 respectively, adjusted by the expired-waste trend factor, while
// their expired fields report the actual expired waste inside the longer
// window.
func (e *WasteEstimator) Estimate(items []entities.InventoryItem, patterns map[string]CategoryPattern, now time.Time, period string) domain.WasteEstimate {
	switch period {
	case domain.PeriodMonth:
		return e.scaled(items, patterns, now, domain.PeriodMonth, 30, 4)
	case domain.PeriodYear:
		return e.scaled(items, patterns, now, domain.PeriodYear, 365, 48)
	default:
		return e.EstimateWeekly(items, patterns, now)
	}
}

// EstimateWeekly estimates waste over the last seven days. The total is
// always the exact sum of the expired and pattern components.
func (e *WasteEstimator) EstimateWeekly(items []entities.InventoryItem, patterns map[string]CategoryPattern, now time.Time) domain.WasteEstimate {
	today := truncateToDay(now)
	windowStart := today.AddDate(0, 0, -7)

	byCategory := make(map[string]domain.CategoryWaste)
	estimate := domain.WasteEstimate{
		Period:      domain.PeriodWeek,
		WindowStart: windowStart,
		TrendFactor: e.TrendFactor(items, now),
	}

	for _, item := range items {
		if item.Status == entities.StatusExpired && item.ExpirationDate != nil &&
			!truncateToDay(*item.ExpirationDate).Before(windowStart) {
			grams := e.tables.ToGrams(item.Quantity, item.Unit)
			cost := e.tables.CostPerUnit(item.Category) * item.Quantity

			estimate.ExpiredWasteGrams += grams
			estimate.ExpiredWasteCost += cost
			addCategoryWaste(byCategory, item.Category, grams, cost)
		}

		if !truncateToDay(item.PurchaseDate).Before(windowStart) &&
			(item.Status == entities.StatusExpired || item.Status == entities.StatusExpiringSoon) {
			rate := e.tables.WasteRate(item.Category)
			if patterns[item.Category].Frequency > 7 {
				rate *= infrequentConsumptionFactor
			}
			if days, ok := item.DaysUntilExpiry(today); ok && days >= 0 && days <= 3 {
				rate *= nearExpiryFactor
			}

			grams := e.tables.ToGrams(item.Quantity, item.Unit) * rate
			cost := e.tables.CostPerUnit(item.Category) * item.Quantity * rate

			estimate.PatternWasteGrams += grams
			estimate.PatternWasteCost += cost
			addCategoryWaste(byCategory, item.Category, grams, cost)
		}
	}

	estimate.TotalWasteGrams = estimate.ExpiredWasteGrams + estimate.PatternWasteGrams
	estimate.TotalWasteCost = estimate.ExpiredWasteCost + estimate.PatternWasteCost
	estimate.ByCategory = byCategory
	return estimate
}

func (e *WasteEstimator) scaled(items []entities.InventoryItem, patterns map[string]CategoryPattern, now time.Time, period string, windowDays int, weeklyMultiple float64) domain.WasteEstimate {
	today := truncateToDay(now)
	windowStart := today.AddDate(0, 0, -windowDays)
	weekly := e.EstimateWeekly(items, patterns, now)

	estimate := domain.WasteEstimate{
		Period:      period,
		WindowStart: windowStart,
		TrendFactor: weekly.TrendFactor,
		ByCategory:  make(map[string]domain.CategoryWaste),
	}

	for _, item := range items {
		if item.Status != entities.StatusExpired || item.ExpirationDate == nil {
			continue
		}
		if truncateToDay(*item.ExpirationDate).Before(windowStart) {
			continue
		}
		grams := e.tables.ToGrams(item.Quantity, item.Unit)
		cost := e.tables.CostPerUnit(item.Category) * item.Quantity

		estimate.ExpiredWasteGrams += grams
		estimate.ExpiredWasteCost += cost
		addCategoryWaste(estimate.ByCategory, item.Category, grams, cost)
	}

	estimate.TotalWasteGrams = weekly.TotalWasteGrams * weeklyMultiple * weekly.TrendFactor
	estimate.TotalWasteCost = weekly.TotalWasteCost * weeklyMultiple * weekly.TrendFactor
	estimate.PatternWasteGrams = estimate.TotalWasteGrams - estimate.ExpiredWasteGrams
	estimate.PatternWasteCost = estimate.TotalWasteCost - estimate.ExpiredWasteCost
	return estimate
}

// TrendFactor compares expired-item waste across the last two weeks. Values
// above 1.0 mean waste is increasing. Clamped to [0.9, 1.1]; 1.0 when there
// is no prior-week data.
func (e *WasteEstimator) TrendFactor(items []entities.InventoryItem, now time.Time) float64 {
	today := truncateToDay(now)
	oneWeekAgo := today.AddDate(0, 0, -7)
	twoWeeksAgo := today.AddDate(0, 0, -14)

	var lastWeek, previousWeek float64
	for _, item := range items {
		if item.Status != entities.StatusExpired || item.ExpirationDate == nil {
			continue
		}
		expired := truncateToDay(*item.ExpirationDate)
		grams := e.tables.ToGrams(item.Quantity, item.Unit)
		switch {
		case !expired.Before(oneWeekAgo) && !expired.After(today):
			lastWeek += grams
		case !expired.Before(twoWeeksAgo) && expired.Before(oneWeekAgo):
			previousWeek += grams
		}
	}

	if previousWeek == 0 {
		return 1.0
	}
	factor := lastWeek / previousWeek
	return math.Max(trendFactorMin, math.Min(trendFactorMax, factor))
}

// Projection extrapolates the current weekly waste N weeks forward. The
// trend factor's pull grows with the horizon at half strength, which keeps
// the projection from compounding a single noisy week.
func (e *WasteEstimator) Projection(items []entities.InventoryItem, patterns map[string]CategoryPattern, now time.Time, weeks int) []domain.WasteProjectionWeek {
	if weeks <= 0 {
		weeks = 4
	}
	weekly := e.EstimateWeekly(items, patterns, now)
	today := truncateToDay(now)

	projections := make([]domain.WasteProjectionWeek, 0, weeks)
	var cumulativeGrams, cumulativeCost float64
	for week := 1; week <= weeks; week++ {
		multiplier := 1 + (weekly.TrendFactor-1)*(float64(week)/float64(weeks))*0.5
		grams := weekly.TotalWasteGrams * multiplier
		cost := weekly.TotalWasteCost * multiplier
		cumulativeGrams += grams
		cumulativeCost += cost

		projections = append(projections, domain.WasteProjectionWeek{
			Week:            week,
			Date:            today.AddDate(0, 0, week*7),
			ProjectedGrams:  grams,
			ProjectedCost:   cost,
			CumulativeGrams: cumulativeGrams,
			CumulativeCost:  cumulativeCost,
		})
	}
	return projections
}

// CompareToCommunity compares the user's waste for a period against the
// configured community averages.
func (e *WasteEstimator) CompareToCommunity(items []entities.InventoryItem, patterns map[string]CategoryPattern, now time.Time, period string) domain.CommunityComparison {
	estimate := e.Estimate(items, patterns, now, period)
	community := e.tables.CommunityAverages[estimate.Period]

	comparison := domain.CommunityComparison{
		Period:         estimate.Period,
		UserGrams:      estimate.TotalWasteGrams,
		CommunityGrams: community.Grams,
		UserCost:       estimate.TotalWasteCost,
		CommunityCost:  community.Cost,
	}

	if community.Grams > 0 {
		comparison.PercentageDiff = (estimate.TotalWasteGrams - community.Grams) / community.Grams * 100
	}
	if estimate.TotalWasteGrams < community.Grams {
		comparison.Status = "better"
	} else {
		comparison.Status = "worse"
	}
	return comparison
}

func addCategoryWaste(byCategory map[string]domain.CategoryWaste, category string, grams, cost float64) {
	waste := byCategory[category]
	waste.Grams += grams
	waste.Cost += cost
	byCategory[category] = waste
}
