package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"foodwise-backend/domain"
	"foodwise-backend/entities"
)

// Component weights of the overall score.
const (
	sdgWasteWeight          = 0.40
	sdgNutritionWeight      = 0.35
	sdgSustainabilityWeight = 0.25
)

type SDGScorer struct {
	tables Tables
	waste  *WasteEstimator
}

func NewSDGScorer(tables Tables) *SDGScorer {
	return &SDGScorer{tables: tables, waste: NewWasteEstimator(tables)}
}

// MondayOf returns the Monday of the week containing t, at midnight.
func MondayOf(t time.Time) time.Time {
	day := truncateToDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// Compute calculates the weekly impact score from the owner's inventory and
// consumption logs. It is deterministic for a fixed input set and clock, so
// recomputing the same week always yields the same scores.
func (s *SDGScorer) Compute(items []entities.InventoryItem, logs []entities.ConsumptionLog, weekStart time.Time, now time.Time, previousOverall *float64) domain.SDGScoreResponse {
	weekStart = MondayOf(weekStart)

	wasteScore := s.wasteReductionScore(items, logs, weekStart, now)
	nutritionScore := s.nutritionScore(logs, weekStart, now)
	sustainabilityScore := s.sustainabilityScore(items, logs, weekStart, now)

	overall := round2(wasteScore*sdgWasteWeight + nutritionScore*sdgNutritionWeight + sustainabilityScore*sdgSustainabilityWeight)

	return domain.SDGScoreResponse{
		WeekStartDate:       weekStart,
		OverallScore:        overall,
		WasteScore:          round2(wasteScore),
		NutritionScore:      round2(nutritionScore),
		SustainabilityScore: round2(sustainabilityScore),
		Insights:            s.insights(items, logs, wasteScore, nutritionScore, sustainabilityScore, now, previousOverall),
		ActionableSteps:     s.actionableSteps(items, logs, wasteScore, nutritionScore, sustainabilityScore, now),
		Improvement:         improvement(overall, previousOverall),
	}
}

func (s *SDGScorer) wasteReductionScore(items []entities.InventoryItem, logs []entities.ConsumptionLog, weekStart, now time.Time) float64 {
	patterns := AnalyzePatterns(logs, now)
	weekly := s.waste.EstimateWeekly(items, patterns, now)
	communityAvg := s.tables.CommunityAverages[domain.PeriodWeek].Grams

	base := wasteTierScore(weekly.TotalWasteGrams, communityAvg)
	trendBonus := s.wasteTrendBonus(items, now)

	var expiredCount, expiringUsed int
	usageWindowStart := weekStart.AddDate(0, 0, -7)
	usageWindowEnd := weekStart.AddDate(0, 0, 7)
	for _, item := range items {
		if item.ExpirationDate == nil {
			continue
		}
		expiry := truncateToDay(*item.ExpirationDate)
		if item.Status == entities.StatusExpired && !expiry.Before(weekStart) {
			expiredCount++
		}
		if item.Status == entities.StatusConsumed &&
			!expiry.Before(usageWindowStart) && !expiry.After(usageWindowEnd) {
			expiringUsed++
		}
	}

	expiredPenalty := math.Min(25, float64(expiredCount)*5)
	usageBonus := math.Min(10, float64(expiringUsed)*2)

	return clamp100(base + trendBonus - expiredPenalty + usageBonus)
}

func wasteTierScore(wasteGrams, communityAvg float64) float64 {
	switch {
	case wasteGrams == 0:
		return 100
	case wasteGrams <= communityAvg*0.3:
		return 95
	case wasteGrams <= communityAvg*0.5:
		return 85
	case wasteGrams <= communityAvg*0.7:
		return 75
	case wasteGrams <= communityAvg:
		return 60
	case wasteGrams <= communityAvg*1.5:
		return 45
	default:
		return 30
	}
}

func (s *SDGScorer) wasteTrendBonus(items []entities.InventoryItem, now time.Time) float64 {
	today := truncateToDay(now)
	oneWeekAgo := today.AddDate(0, 0, -7)
	twoWeeksAgo := today.AddDate(0, 0, -14)

	var previousWeek, lastWeek int
	for _, item := range items {
		if item.Status != entities.StatusExpired || item.ExpirationDate == nil {
			continue
		}
		expiry := truncateToDay(*item.ExpirationDate)
		switch {
		case !expiry.Before(oneWeekAgo) && !expiry.After(today):
			lastWeek++
		case !expiry.Before(twoWeeksAgo) && expiry.Before(oneWeekAgo):
			previousWeek++
		}
	}

	if previousWeek > 0 {
		improvementPct := float64(previousWeek-lastWeek) / float64(previousWeek) * 100
		switch {
		case improvementPct > 50:
			return 15
		case improvementPct > 25:
			return 10
		case improvementPct > 0:
			return 5
		}
		return 0
	}
	if lastWeek == 0 {
		return 5
	}
	return 0
}

func (s *SDGScorer) nutritionScore(logs []entities.ConsumptionLog, weekStart, now time.Time) float64 {
	base := 100.0

	for _, imbalance := range DetectImbalances(s.tables, logs, now) {
		switch imbalance.Type {
		case "under_consumption":
			switch imbalance.Severity {
			case "high":
				base -= 20
			case "medium":
				base -= 12
			default:
				base -= 6
			}
		case "over_consumption":
			if imbalance.Severity == "high" {
				base -= 10
			} else {
				base -= 5
			}
		}
	}

	for _, gap := range DetectNutrientGaps(s.tables, logs, now) {
		switch {
		case gap.GapPercentage > 50:
			base -= 25
		case gap.GapPercentage > 30:
			base -= 15
		case gap.GapPercentage > 15:
			base -= 8
		default:
			base -= 3
		}
	}

	weekLogs, weekCategories, vegFruitLogs := weekConsumptionStats(logs, weekStart)

	switch {
	case weekCategories >= 6:
		base += 15
	case weekCategories >= 5:
		base += 10
	case weekCategories >= 4:
		base += 5
	case weekCategories >= 3:
		base += 2
	}

	switch {
	case weekLogs >= 14:
		base += 10
	case weekLogs >= 7:
		base += 5
	}

	switch {
	case vegFruitLogs >= 10:
		base += 10
	case vegFruitLogs >= 5:
		base += 5
	}

	return clamp100(base)
}

func (s *SDGScorer) sustainabilityScore(items []entities.InventoryItem, logs []entities.ConsumptionLog, weekStart, now time.Time) float64 {
	base := 60.0

	patterns := AnalyzePatterns(logs, now)
	weekly := s.waste.EstimateWeekly(items, patterns, now)
	communityAvg := s.tables.CommunityAverages[domain.PeriodWeek].Grams

	switch {
	case weekly.TotalWasteGrams <= communityAvg*0.5:
		base += 20
	case weekly.TotalWasteGrams <= communityAvg*0.7:
		base += 15
	case weekly.TotalWasteGrams <= communityAvg:
		base += 10
	case weekly.TotalWasteGrams <= communityAvg*1.2:
		base += 5
	}

	usageWindowStart := weekStart.AddDate(0, 0, -7)
	var expiringUsed int
	for _, item := range items {
		if item.Status == entities.StatusConsumed && item.ExpirationDate != nil &&
			!truncateToDay(*item.ExpirationDate).Before(usageWindowStart) {
			expiringUsed++
		}
	}
	switch {
	case expiringUsed >= 5:
		base += 15
	case expiringUsed >= 3:
		base += 10
	case expiringUsed >= 1:
		base += 5
	}

	weekLogs, _, _ := weekConsumptionStats(logs, weekStart)
	switch {
	case weekLogs >= 14:
		base += 10
	case weekLogs >= 7:
		base += 5
	}

	return clamp100(base)
}

func (s *SDGScorer) insights(items []entities.InventoryItem, logs []entities.ConsumptionLog, wasteScore, nutritionScore, sustainabilityScore float64, now time.Time, previousOverall *float64) []domain.SDGInsight {
	insights := make([]domain.SDGInsight, 0, 5)
	overall := wasteScore*sdgWasteWeight + nutritionScore*sdgNutritionWeight + sustainabilityScore*sdgSustainabilityWeight

	if previousOverall != nil {
		change := overall - *previousOverall
		if change > 5 {
			insights = append(insights, domain.SDGInsight{
				Type:                 "success",
				Category:             "overall",
				Message:              fmt.Sprintf("Great progress! Your score improved by %.1f points this week.", change),
				Impact:               "positive",
				ImprovementPotential: fmt.Sprintf("+%.1f points", change),
			})
		} else if change < -5 {
			insights = append(insights, domain.SDGInsight{
				Type:                 "warning",
				Category:             "overall",
				Message:              fmt.Sprintf("Your score decreased by %.1f points. Focus on the actionable steps below.", math.Abs(change)),
				Impact:               "high",
				ImprovementPotential: fmt.Sprintf("%.1f points", change),
			})
		}
	}

	if wasteScore < 60 {
		patterns := AnalyzePatterns(logs, now)
		weekly := s.waste.EstimateWeekly(items, patterns, now)
		insights = append(insights, domain.SDGInsight{
			Type:     "warning",
			Category: "waste",
			Message: fmt.Sprintf("Your waste reduction score is %.1f/100. You're wasting %.0fg per week ($%.2f). Focus on using items before they expire.",
				wasteScore, weekly.TotalWasteGrams, weekly.TotalWasteCost),
			Impact:               "high",
			ImprovementPotential: "15-20 points",
		})
	} else if wasteScore >= 80 {
		insights = append(insights, domain.SDGInsight{
			Type:     "success",
			Category: "waste",
			Message:  fmt.Sprintf("Excellent waste management! Your score is %.1f/100. Keep up the great work!", wasteScore),
			Impact:   "positive",
		})
	}

	if nutritionScore < 70 {
		var lowCategories []string
		for _, imbalance := range DetectImbalances(s.tables, logs, now) {
			if imbalance.Type == "under_consumption" {
				lowCategories = append(lowCategories, imbalance.Category)
			}
		}
		gaps := DetectNutrientGaps(s.tables, logs, now)

		if len(lowCategories) > 0 {
			if len(lowCategories) > 3 {
				lowCategories = lowCategories[:3]
			}
			insights = append(insights, domain.SDGInsight{
				Type:     "info",
				Category: "nutrition",
				Message: fmt.Sprintf("Your nutrition score is %.1f/100. You're under-consuming: %s. Adding these can boost your score significantly.",
					nutritionScore, strings.Join(lowCategories, ", ")),
				Impact:               "high",
				ImprovementPotential: "10-15 points",
			})
		} else if len(gaps) > 0 {
			names := make([]string, 0, 2)
			for _, gap := range gaps {
				names = append(names, gap.Nutrient)
				if len(names) == 2 {
					break
				}
			}
			insights = append(insights, domain.SDGInsight{
				Type:     "info",
				Category: "nutrition",
				Message: fmt.Sprintf("Your nutrition score is %.1f/100. Nutrient gaps detected: %s. Focus on foods rich in these nutrients.",
					nutritionScore, strings.Join(names, ", ")),
				Impact:               "medium",
				ImprovementPotential: "8-12 points",
			})
		}
	} else if nutritionScore >= 85 {
		insights = append(insights, domain.SDGInsight{
			Type:     "success",
			Category: "nutrition",
			Message:  fmt.Sprintf("Great nutrition balance! Your score is %.1f/100.", nutritionScore),
			Impact:   "positive",
		})
	}

	if sustainabilityScore < 70 {
		insights = append(insights, domain.SDGInsight{
			Type:                 "info",
			Category:             "sustainability",
			Message:              fmt.Sprintf("Your sustainability score is %.1f/100. Regular tracking and meal planning can help improve this.", sustainabilityScore),
			Impact:               "medium",
			ImprovementPotential: "10-15 points",
		})
	} else if sustainabilityScore >= 85 {
		insights = append(insights, domain.SDGInsight{
			Type:     "success",
			Category: "sustainability",
			Message:  fmt.Sprintf("Excellent sustainability practices! Your score is %.1f/100.", sustainabilityScore),
			Impact:   "positive",
		})
	}

	return insights
}

func (s *SDGScorer) actionableSteps(items []entities.InventoryItem, logs []entities.ConsumptionLog, wasteScore, nutritionScore, sustainabilityScore float64, now time.Time) []domain.SDGActionStep {
	var steps []domain.SDGActionStep

	if wasteScore < 75 {
		var expiringNames []string
		for _, item := range items {
			if item.Status == entities.StatusExpiringSoon {
				expiringNames = append(expiringNames, item.ItemName)
				if len(expiringNames) == 3 {
					break
				}
			}
		}
		if len(expiringNames) > 0 {
			steps = append(steps, domain.SDGActionStep{
				Priority:            "high",
				Action:              fmt.Sprintf("Use expiring items first: %s", strings.Join(expiringNames, ", ")),
				ExpectedImprovement: "12-18 points",
				Category:            "waste",
				Specific:            true,
			})
		}

		patterns := AnalyzePatterns(logs, now)
		weekly := s.waste.EstimateWeekly(items, patterns, now)
		if weekly.TotalWasteGrams > 300 {
			steps = append(steps, domain.SDGActionStep{
				Priority:            "high",
				Action:              "Plan meals around your inventory to reduce waste",
				ExpectedImprovement: "10-15 points",
				Category:            "waste",
			})
		}

		steps = append(steps, domain.SDGActionStep{
			Priority:            "medium",
			Action:              "Check expiration dates regularly and use FIFO (First In, First Out)",
			ExpectedImprovement: "8-12 points",
			Category:            "waste",
		})
	}

	if nutritionScore < 80 {
		var underConsumed []CategoryImbalance
		for _, imbalance := range DetectImbalances(s.tables, logs, now) {
			if imbalance.Type == "under_consumption" {
				underConsumed = append(underConsumed, imbalance)
			}
		}
		for i, imbalance := range underConsumed {
			if i == 2 {
				break
			}
			steps = append(steps, domain.SDGActionStep{
				Priority:            "high",
				Action:              fmt.Sprintf("Focus on adding more %s to your meals", imbalance.Category),
				ExpectedImprovement: "10-15 points",
				Category:            "nutrition",
				Specific:            true,
			})
		}

		for i, gap := range DetectNutrientGaps(s.tables, logs, now) {
			if i == 2 {
				break
			}
			if gap.GapPercentage > 30 {
				points := int(math.Min(15, gap.GapPercentage*0.3))
				steps = append(steps, domain.SDGActionStep{
					Priority:            "high",
					Action:              fmt.Sprintf("Increase %s intake - you have a %.0f%% gap", gap.Nutrient, gap.GapPercentage),
					ExpectedImprovement: fmt.Sprintf("%d points", points),
					Category:            "nutrition",
					Specific:            true,
				})
			}
		}

		weekStart := truncateToDay(now).AddDate(0, 0, -7)
		_, weekCategories, _ := weekConsumptionStats(logs, weekStart)
		if weekCategories < 4 {
			steps = append(steps, domain.SDGActionStep{
				Priority:            "medium",
				Action:              "Add more variety to your diet - aim for 5+ different food categories per week",
				ExpectedImprovement: "8-12 points",
				Category:            "nutrition",
			})
		}
	}

	if sustainabilityScore < 75 {
		weekStart := truncateToDay(now).AddDate(0, 0, -7)
		weekLogs, _, _ := weekConsumptionStats(logs, weekStart)
		if weekLogs < 7 {
			steps = append(steps, domain.SDGActionStep{
				Priority:            "medium",
				Action:              "Log your food consumption daily for better tracking and awareness",
				ExpectedImprovement: "5-10 points",
				Category:            "sustainability",
			})
		}
		steps = append(steps, domain.SDGActionStep{
			Priority:            "medium",
			Action:              "Use the meal optimizer to plan sustainable, waste-reducing meals",
			ExpectedImprovement: "8-12 points",
			Category:            "sustainability",
		})
	}

	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].Priority == "high" && steps[j].Priority != "high"
	})

	if len(steps) > 6 {
		steps = steps[:6]
	}
	return steps
}

func improvement(overall float64, previousOverall *float64) domain.SDGImprovement {
	if previousOverall == nil {
		return domain.SDGImprovement{Trend: "new"}
	}

	change := round2(overall - *previousOverall)
	var percentChange float64
	if *previousOverall > 0 {
		percentChange = round2((overall - *previousOverall) / *previousOverall * 100)
	}

	trend := "stable"
	if change > 0 {
		trend = "improving"
	} else if change < 0 {
		trend = "declining"
	}

	return domain.SDGImprovement{
		OverallChange:        &change,
		OverallPercentChange: &percentChange,
		Trend:                trend,
	}
}

func weekConsumptionStats(logs []entities.ConsumptionLog, weekStart time.Time) (total, categories, vegFruit int) {
	weekStart = truncateToDay(weekStart)
	seen := make(map[string]struct{})
	for _, log := range logs {
		if truncateToDay(log.DateConsumed).Before(weekStart) {
			continue
		}
		total++
		seen[log.Category] = struct{}{}
		if log.Category == entities.CategoryVegetable || log.Category == entities.CategoryFruit {
			vegFruit++
		}
	}
	return total, len(seen), vegFruit
}

func clamp100(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
