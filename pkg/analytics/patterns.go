package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"foodwise-backend/entities"
)

const (
	PatternLookbackDays = 30
	TrendLookbackDays   = 28

	// A weekday is flagged when its top category exceeds this share of
	// the day's total consumption.
	trendDominanceShare = 0.4
)

var weekdayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

type (
	// CategoryPattern summarizes how one food category is consumed over the
	// lookback window.
	CategoryPattern struct {
		TotalConsumed   float64
		ConsumptionDays int
		AvgDaily        float64
		Frequency       float64
	}

	WeekdayTrend struct {
		Day         string
		Category    string
		Percentage  float64
		Description string
	}

	WeeklyTrends struct {
		Patterns []WeekdayTrend
		Heatmap  map[string]map[string]float64
		Summary  string
	}
)

// AnalyzePatterns builds per-category consumption patterns from logs inside
// the lookback window ending at today. Frequency is the mean gap in days
// between distinct consumption dates; a category seen on a single day gets a
// frequency equal to the full window.
func AnalyzePatterns(logs []entities.ConsumptionLog, today time.Time) map[string]CategoryPattern {
	windowStart := truncateToDay(today).AddDate(0, 0, -PatternLookbackDays)

	totals := make(map[string]float64)
	dates := make(map[string]map[time.Time]struct{})

	for _, log := range logs {
		day := truncateToDay(log.DateConsumed)
		if day.Before(windowStart) {
			continue
		}
		totals[log.Category] += log.Quantity
		if dates[log.Category] == nil {
			dates[log.Category] = make(map[time.Time]struct{})
		}
		dates[log.Category][day] = struct{}{}
	}

	patterns := make(map[string]CategoryPattern, len(totals))
	for category, total := range totals {
		uniqueDates := make([]time.Time, 0, len(dates[category]))
		for d := range dates[category] {
			uniqueDates = append(uniqueDates, d)
		}
		sort.Slice(uniqueDates, func(i, j int) bool { return uniqueDates[i].Before(uniqueDates[j]) })

		pattern := CategoryPattern{
			TotalConsumed:   total,
			ConsumptionDays: len(uniqueDates),
		}

		if len(uniqueDates) > 1 {
			var intervalSum float64
			for i := 1; i < len(uniqueDates); i++ {
				intervalSum += uniqueDates[i].Sub(uniqueDates[i-1]).Hours() / 24
			}
			pattern.Frequency = intervalSum / float64(len(uniqueDates)-1)
		} else {
			pattern.Frequency = PatternLookbackDays
		}

		if pattern.ConsumptionDays > 0 {
			pattern.AvgDaily = pattern.TotalConsumed / float64(pattern.ConsumptionDays)
		}

		patterns[category] = pattern
	}

	return patterns
}

// AnalyzeWeeklyTrends builds a weekday-by-category heatmap over the last four
// weeks and flags weekdays dominated by a single category.
func AnalyzeWeeklyTrends(logs []entities.ConsumptionLog, today time.Time) WeeklyTrends {
	windowStart := truncateToDay(today).AddDate(0, 0, -TrendLookbackDays)

	heatmap := make(map[string]map[string]float64, len(weekdayNames))
	for _, day := range weekdayNames {
		heatmap[day] = map[string]float64{}
	}

	for _, log := range logs {
		day := truncateToDay(log.DateConsumed)
		if day.Before(windowStart) {
			continue
		}
		heatmap[weekdayName(day)][log.Category] += log.Quantity
	}

	var trends []WeekdayTrend
	for _, day := range weekdayNames {
		categories := heatmap[day]
		if len(categories) == 0 {
			continue
		}

		var dayTotal float64
		topCategory := ""
		topQuantity := 0.0
		for category, quantity := range categories {
			dayTotal += quantity
			if quantity > topQuantity || (quantity == topQuantity && category < topCategory) {
				topCategory = category
				topQuantity = quantity
			}
		}

		if dayTotal > 0 && topQuantity > dayTotal*trendDominanceShare {
			trends = append(trends, WeekdayTrend{
				Day:         day,
				Category:    topCategory,
				Percentage:  topQuantity / dayTotal * 100,
				Description: fmt.Sprintf("High %s consumption on %ss", topCategory, day),
			})
		}
	}

	return WeeklyTrends{
		Patterns: trends,
		Heatmap:  heatmap,
		Summary:  trendSummary(trends),
	}
}

func trendSummary(trends []WeekdayTrend) string {
	if len(trends) == 0 {
		return "No significant weekly trends detected. Your consumption is fairly consistent."
	}

	descriptions := make([]string, 0, 3)
	for _, trend := range trends {
		descriptions = append(descriptions, trend.Description)
		if len(descriptions) == 3 {
			break
		}
	}
	return strings.Join(descriptions, " | ")
}

func weekdayName(t time.Time) string {
	// time.Weekday starts at Sunday; the table starts at Monday.
	idx := (int(t.Weekday()) + 6) % 7
	return weekdayNames[idx]
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
