package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"foodwise-backend/domain"
	"foodwise-backend/entities"
)

const DefaultRiskDaysAhead = 7

type RiskScorer struct {
	tables Tables
}

func NewRiskScorer(tables Tables) *RiskScorer {
	return &RiskScorer{tables: tables}
}

// Predict scores every non-consumed item expiring within daysAhead days and
// orders the result by ranking score, highest priority first. Items without
// an expiration date are skipped.
func (s *RiskScorer) Predict(items []entities.InventoryItem, patterns map[string]CategoryPattern, now time.Time, householdSize, daysAhead int) []domain.RiskPrediction {
	if daysAhead <= 0 {
		daysAhead = DefaultRiskDaysAhead
	}
	if householdSize < 1 {
		householdSize = 1
	}

	today := truncateToDay(now)
	targetDate := today.AddDate(0, 0, daysAhead)
	season := SeasonForMonth(now.Month())

	predictions := make([]domain.RiskPrediction, 0, len(items))
	for _, item := range items {
		if item.Status == entities.StatusConsumed || item.ExpirationDate == nil {
			continue
		}
		if truncateToDay(*item.ExpirationDate).After(targetDate) {
			continue
		}

		daysUntil, _ := item.DaysUntilExpiry(today)
		riskScore := s.riskScore(item, patterns, season, daysUntil, householdSize)
		priority := PriorityForScore(riskScore)

		predictions = append(predictions, domain.RiskPrediction{
			InventoryItemID:   item.ID.String(),
			ItemName:          item.ItemName,
			Category:          item.Category,
			ExpirationDate:    item.ExpirationDate,
			DaysUntilExpiry:   daysUntil,
			RiskScore:         riskScore,
			AIRankingScore:    s.rankingScore(item, riskScore, today, daysUntil),
			Priority:          priority,
			Reasoning:         s.reasoning(item, patterns, season, daysUntil),
			RecommendedAction: recommendedAction(priority, item.ItemName),
		})
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].AIRankingScore > predictions[j].AIRankingScore
	})

	return predictions
}

func (s *RiskScorer) riskScore(item entities.InventoryItem, patterns map[string]CategoryPattern, season string, daysUntil, householdSize int) float64 {
	timeRisk := timeRisk(daysUntil)

	rate := s.tables.CategoryRate(item.Category)
	risk := timeRisk * rate.RiskMultiplier

	if rate.SeasonalSensitive {
		risk *= s.seasonalFactor(season, item.Category)
	}

	pattern := patterns[item.Category]
	consumptionRisk := 0.0
	if pattern.AvgDaily > 0 {
		daysToConsume := item.Quantity / pattern.AvgDaily
		if daysToConsume > float64(daysUntil) {
			consumptionRisk = math.Min(30, (daysToConsume-float64(daysUntil))*5)
		}
	}
	if pattern.Frequency > 7 {
		consumptionRisk += 10
	}

	householdAdjustment := -5 * float64(householdSize-1)

	final := risk + consumptionRisk + householdAdjustment
	final = math.Max(0, math.Min(100, final))
	return round2(final)
}

func (s *RiskScorer) rankingScore(item entities.InventoryItem, riskScore float64, today time.Time, daysUntil int) float64 {
	daysSincePurchase := int(today.Sub(truncateToDay(item.PurchaseDate)).Hours() / 24)
	fifoScore := math.Min(50, float64(daysSincePurchase)*2)
	if daysSincePurchase < 0 {
		fifoScore = 0
	}

	var proximityBonus float64
	switch {
	case daysUntil <= 0:
		proximityBonus = 50
	case daysUntil <= 1:
		proximityBonus = 40
	case daysUntil <= 3:
		proximityBonus = 30
	case daysUntil <= 7:
		proximityBonus = 20
	default:
		proximityBonus = math.Max(0, 20-float64(daysUntil))
	}

	rate := s.tables.CategoryRate(item.Category)
	urgencyBonus := (1 - rate.RiskMultiplier/2) * 10

	return round2(fifoScore + riskScore*0.5 + proximityBonus + urgencyBonus)
}

func (s *RiskScorer) reasoning(item entities.InventoryItem, patterns map[string]CategoryPattern, season string, daysUntil int) []string {
	reasons := make([]string, 0, 4)

	switch {
	case daysUntil < 0:
		reasons = append(reasons, "Item has already expired")
	case daysUntil <= 1:
		reasons = append(reasons, fmt.Sprintf("Expires in %d day - urgent action needed", daysUntil))
	case daysUntil <= 3:
		reasons = append(reasons, fmt.Sprintf("Expires in %d days - high priority", daysUntil))
	default:
		reasons = append(reasons, fmt.Sprintf("Expires in %d days", daysUntil))
	}

	rate := s.tables.CategoryRate(item.Category)
	if rate.SeasonalSensitive && s.seasonalFactor(season, item.Category) > 1.0 {
		reasons = append(reasons, fmt.Sprintf("%s items expire faster in %s", titleCase(item.Category), season))
	}

	pattern := patterns[item.Category]
	if pattern.AvgDaily > 0 {
		daysToConsume := item.Quantity / pattern.AvgDaily
		if daysToConsume > float64(daysUntil) {
			reasons = append(reasons, fmt.Sprintf(
				"Based on your consumption rate (%.2f %s/day), you need %.1f days to consume this item",
				pattern.AvgDaily, item.Unit, daysToConsume))
		}
	}
	if pattern.Frequency > 7 {
		reasons = append(reasons, fmt.Sprintf(
			"You consume %s items infrequently (every %.1f days on average)",
			item.Category, pattern.Frequency))
	}

	return reasons
}

func (s *RiskScorer) seasonalFactor(season, category string) float64 {
	if factors, ok := s.tables.SeasonalFactors[season]; ok {
		if factor, ok := factors[category]; ok {
			return factor
		}
	}
	return 1.0
}

// timeRisk reserves 100 strictly for items already past their expiration
// date; an item expiring today scores 90.
func timeRisk(daysUntil int) float64 {
	switch {
	case daysUntil < 0:
		return 100
	case daysUntil <= 1:
		return 90
	case daysUntil <= 3:
		return 75
	case daysUntil <= 7:
		return 60
	default:
		return math.Max(20, 60-float64(daysUntil-7)*2)
	}
}

func PriorityForScore(score float64) string {
	switch {
	case score >= 80:
		return domain.PriorityCritical
	case score >= 60:
		return domain.PriorityHigh
	case score >= 40:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}

func recommendedAction(priority, itemName string) string {
	switch priority {
	case domain.PriorityCritical:
		return fmt.Sprintf("Use %s immediately or freeze/preserve it today", itemName)
	case domain.PriorityHigh:
		return fmt.Sprintf("Plan to use %s within 24 hours", itemName)
	case domain.PriorityMedium:
		return fmt.Sprintf("Prioritize %s in your meal planning for the next 3 days", itemName)
	default:
		return fmt.Sprintf("Monitor %s - still safe but plan consumption soon", itemName)
	}
}

// SeasonForMonth maps a month to a Northern Hemisphere season.
func SeasonForMonth(month time.Month) string {
	switch month {
	case time.December, time.January, time.February:
		return "winter"
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	default:
		return "autumn"
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
