package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sort"
	"time"

	"foodwise-backend/domain"
	"foodwise-backend/entities"
	"foodwise-backend/pkg/consumption"
	"foodwise-backend/pkg/inventory"
	"foodwise-backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultAlertLimit      = 10
	defaultHistoryLimit    = 12
	defaultProjectionWeeks = 4

	// Logs older than this never influence any scorer, so one fetch covers
	// patterns (30d), trends (28d) and the SDG windows.
	logFetchDays = 90
)

// ErrInsightsUnavailable marks an insight generator that cannot run at all,
// as opposed to a transient failure worth logging.
var ErrInsightsUnavailable = errors.New("ai insights unavailable")

type (
	// InsightGenerator produces impact insights from component scores. The
	// advisor's LLM integration satisfies this; the rule-based generator is
	// the always-available fallback.
	InsightGenerator interface {
		GenerateInsights(ctx context.Context, wasteScore, nutritionScore, sustainabilityScore float64) ([]domain.SDGInsight, error)
	}

	AnalyticsService interface {
		GetRiskPredictions(ctx context.Context, userID string, daysAhead int) ([]domain.RiskPrediction, error)
		GetHighRiskAlerts(ctx context.Context, userID string, limit int) ([]domain.RiskAlert, error)
		GetWasteEstimate(ctx context.Context, userID string, period string) (domain.WasteEstimate, error)
		GetWasteProjection(ctx context.Context, userID string, weeks int) ([]domain.WasteProjectionWeek, error)
		CompareToCommunity(ctx context.Context, userID string, period string) (domain.CommunityComparison, error)
		GetPatterns(ctx context.Context, userID string) ([]domain.CategoryPatternResponse, error)
		GetWeeklyTrends(ctx context.Context, userID string) (domain.WeeklyTrendsResponse, error)
		ComputeSDGScore(ctx context.Context, userID string, weekStart *time.Time) (domain.SDGScoreResponse, error)
		SaveWeeklyScore(ctx context.Context, userID string, weekStart *time.Time) (domain.SDGScoreResponse, error)
		GetSDGHistory(ctx context.Context, userID string, limit int) ([]domain.SDGScoreResponse, error)
	}

	analyticsService struct {
		analyticsRepository   AnalyticsRepository
		inventoryRepository   inventory.InventoryRepository
		consumptionRepository consumption.ConsumptionRepository
		userRepository        user.UserRepository
		tables                Tables
		riskScorer            *RiskScorer
		wasteEstimator        *WasteEstimator
		sdgScorer             *SDGScorer
		insightGenerator      InsightGenerator
	}
)

// NewAnalyticsService wires the scoring engines to their data sources.
// insightGenerator may be nil; the rule-based insights are used then.
func NewAnalyticsService(
	analyticsRepository AnalyticsRepository,
	inventoryRepository inventory.InventoryRepository,
	consumptionRepository consumption.ConsumptionRepository,
	userRepository user.UserRepository,
	tables Tables,
	insightGenerator InsightGenerator,
) AnalyticsService {
	return &analyticsService{
		analyticsRepository:   analyticsRepository,
		inventoryRepository:   inventoryRepository,
		consumptionRepository: consumptionRepository,
		userRepository:        userRepository,
		tables:                tables,
		riskScorer:            NewRiskScorer(tables),
		wasteEstimator:        NewWasteEstimator(tables),
		sdgScorer:             NewSDGScorer(tables),
		insightGenerator:      insightGenerator,
	}
}

func (s *analyticsService) GetRiskPredictions(ctx context.Context, userID string, daysAhead int) ([]domain.RiskPrediction, error) {
	items, logs, err := s.loadData(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	patterns := AnalyzePatterns(logs, now)
	predictions := s.riskScorer.Predict(items, patterns, now, s.householdSize(ctx, userID), daysAhead)

	s.snapshotPredictions(ctx, userID, predictions, now)

	return predictions, nil
}

func (s *analyticsService) GetHighRiskAlerts(ctx context.Context, userID string, limit int) ([]domain.RiskAlert, error) {
	if limit <= 0 {
		limit = defaultAlertLimit
	}

	predictions, err := s.GetRiskPredictions(ctx, userID, DefaultRiskDaysAhead)
	if err != nil {
		return nil, err
	}

	alerts := make([]domain.RiskAlert, 0, limit)
	for _, pred := range predictions {
		if pred.Priority != domain.PriorityCritical && pred.Priority != domain.PriorityHigh {
			continue
		}
		alerts = append(alerts, domain.RiskAlert{
			Type:              pred.Priority,
			InventoryItemID:   pred.InventoryItemID,
			ItemName:          pred.ItemName,
			ExpirationDate:    pred.ExpirationDate,
			DaysUntilExpiry:   pred.DaysUntilExpiry,
			RiskScore:         pred.RiskScore,
			RecommendedAction: pred.RecommendedAction,
			Reasoning:         pred.Reasoning,
		})
		if len(alerts) == limit {
			break
		}
	}
	return alerts, nil
}

func (s *analyticsService) GetWasteEstimate(ctx context.Context, userID string, period string) (domain.WasteEstimate, error) {
	if err := validPeriod(period); err != nil {
		return domain.WasteEstimate{}, err
	}

	items, logs, err := s.loadData(ctx, userID)
	if err != nil {
		return domain.WasteEstimate{}, err
	}

	now := time.Now()
	estimate := s.wasteEstimator.Estimate(items, AnalyzePatterns(logs, now), now, period)

	s.snapshotWaste(ctx, userID, estimate, now)

	return estimate, nil
}

func (s *analyticsService) GetWasteProjection(ctx context.Context, userID string, weeks int) ([]domain.WasteProjectionWeek, error) {
	if weeks <= 0 {
		weeks = defaultProjectionWeeks
	}

	items, logs, err := s.loadData(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return s.wasteEstimator.Projection(items, AnalyzePatterns(logs, now), now, weeks), nil
}

func (s *analyticsService) CompareToCommunity(ctx context.Context, userID string, period string) (domain.CommunityComparison, error) {
	if period == "" {
		period = domain.PeriodWeek
	}
	if err := validPeriod(period); err != nil {
		return domain.CommunityComparison{}, err
	}

	items, logs, err := s.loadData(ctx, userID)
	if err != nil {
		return domain.CommunityComparison{}, err
	}

	now := time.Now()
	return s.wasteEstimator.CompareToCommunity(items, AnalyzePatterns(logs, now), now, period), nil
}

func (s *analyticsService) GetPatterns(ctx context.Context, userID string) ([]domain.CategoryPatternResponse, error) {
	_, logs, err := s.loadData(ctx, userID)
	if err != nil {
		return nil, err
	}

	patterns := AnalyzePatterns(logs, time.Now())

	categories := make([]string, 0, len(patterns))
	for category := range patterns {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	responses := make([]domain.CategoryPatternResponse, 0, len(patterns))
	for _, category := range categories {
		pattern := patterns[category]
		responses = append(responses, domain.CategoryPatternResponse{
			Category:        category,
			TotalConsumed:   pattern.TotalConsumed,
			ConsumptionDays: pattern.ConsumptionDays,
			AvgDaily:        pattern.AvgDaily,
			Frequency:       pattern.Frequency,
		})
	}
	return responses, nil
}

func (s *analyticsService) GetWeeklyTrends(ctx context.Context, userID string) (domain.WeeklyTrendsResponse, error) {
	_, logs, err := s.loadData(ctx, userID)
	if err != nil {
		return domain.WeeklyTrendsResponse{}, err
	}

	trends := AnalyzeWeeklyTrends(logs, time.Now())

	patterns := make([]domain.WeekdayPattern, 0, len(trends.Patterns))
	for _, trend := range trends.Patterns {
		patterns = append(patterns, domain.WeekdayPattern{
			Day:         trend.Day,
			Category:    trend.Category,
			Percentage:  trend.Percentage,
			Description: trend.Description,
		})
	}

	return domain.WeeklyTrendsResponse{
		Patterns: patterns,
		Heatmap:  trends.Heatmap,
		Summary:  trends.Summary,
	}, nil
}

func (s *analyticsService) ComputeSDGScore(ctx context.Context, userID string, weekStart *time.Time) (domain.SDGScoreResponse, error) {
	items, logs, err := s.loadData(ctx, userID)
	if err != nil {
		return domain.SDGScoreResponse{}, err
	}

	now := time.Now()
	start := MondayOf(now)
	if weekStart != nil {
		start = MondayOf(*weekStart)
	}

	result := s.sdgScorer.Compute(items, logs, start, now, s.previousOverall(ctx, userID, start))

	if s.insightGenerator != nil {
		insights, err := s.insightGenerator.GenerateInsights(ctx, result.WasteScore, result.NutritionScore, result.SustainabilityScore)
		if err != nil {
			if !errors.Is(err, ErrInsightsUnavailable) {
				log.Printf("ai insight generation failed, keeping rule-based insights: %v", err)
			}
		} else if len(insights) > 0 {
			result.Insights = insights
		}
	}

	return result, nil
}

func (s *analyticsService) SaveWeeklyScore(ctx context.Context, userID string, weekStart *time.Time) (domain.SDGScoreResponse, error) {
	result, err := s.ComputeSDGScore(ctx, userID, weekStart)
	if err != nil {
		return domain.SDGScoreResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SDGScoreResponse{}, domain.ErrParseUUID
	}

	insightsJSON, _ := json.Marshal(result.Insights)
	stepsJSON, _ := json.Marshal(result.ActionableSteps)

	score := &entities.SDGImpactScore{
		ID:                  uuid.New(),
		UserID:              userUUID,
		WeekStartDate:       result.WeekStartDate,
		OverallScore:        result.OverallScore,
		WasteScore:          result.WasteScore,
		NutritionScore:      result.NutritionScore,
		SustainabilityScore: result.SustainabilityScore,
		Insights:            string(insightsJSON),
		ActionableSteps:     string(stepsJSON),
	}

	if err := s.analyticsRepository.UpsertSDGScore(ctx, score); err != nil {
		return domain.SDGScoreResponse{}, err
	}

	return result, nil
}

func (s *analyticsService) GetSDGHistory(ctx context.Context, userID string, limit int) ([]domain.SDGScoreResponse, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	scores, err := s.analyticsRepository.GetSDGScoreHistory(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.SDGScoreResponse, 0, len(scores))
	for _, score := range scores {
		response := domain.SDGScoreResponse{
			WeekStartDate:       score.WeekStartDate,
			OverallScore:        score.OverallScore,
			WasteScore:          score.WasteScore,
			NutritionScore:      score.NutritionScore,
			SustainabilityScore: score.SustainabilityScore,
		}
		if err := json.Unmarshal([]byte(score.Insights), &response.Insights); err != nil {
			log.Printf("corrupt insights payload for score %s: %v", score.ID, err)
		}
		if err := json.Unmarshal([]byte(score.ActionableSteps), &response.ActionableSteps); err != nil {
			log.Printf("corrupt actionable steps payload for score %s: %v", score.ID, err)
		}
		responses = append(responses, response)
	}
	return responses, nil
}

func (s *analyticsService) loadData(ctx context.Context, userID string) ([]entities.InventoryItem, []entities.ConsumptionLog, error) {
	itemPtrs, err := s.inventoryRepository.GetAllItems(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	since := time.Now().AddDate(0, 0, -logFetchDays)
	logPtrs, err := s.consumptionRepository.GetLogsSince(ctx, userID, since)
	if err != nil {
		return nil, nil, err
	}

	items := make([]entities.InventoryItem, 0, len(itemPtrs))
	for _, item := range itemPtrs {
		items = append(items, *item)
	}
	logs := make([]entities.ConsumptionLog, 0, len(logPtrs))
	for _, l := range logPtrs {
		logs = append(logs, *l)
	}
	return items, logs, nil
}

func (s *analyticsService) householdSize(ctx context.Context, userID string) int {
	owner, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil || owner.HouseholdSize < 1 {
		return 1
	}
	return owner.HouseholdSize
}

func (s *analyticsService) previousOverall(ctx context.Context, userID string, weekStart time.Time) *float64 {
	previous, err := s.analyticsRepository.GetSDGScore(ctx, userID, weekStart.AddDate(0, 0, -7))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("failed to load previous week score: %v", err)
		}
		return nil
	}
	overall := previous.OverallScore
	return &overall
}

func (s *analyticsService) snapshotPredictions(ctx context.Context, userID string, predictions []domain.RiskPrediction, now time.Time) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return
	}

	rows := make([]*entities.RiskPrediction, 0, len(predictions))
	predictedFor := truncateToDay(now)
	for _, pred := range predictions {
		itemUUID, err := uuid.Parse(pred.InventoryItemID)
		if err != nil {
			continue
		}
		reasoningJSON, _ := json.Marshal(pred.Reasoning)
		rows = append(rows, &entities.RiskPrediction{
			ID:                uuid.New(),
			UserID:            userUUID,
			InventoryItemID:   itemUUID,
			ItemName:          pred.ItemName,
			Category:          pred.Category,
			RiskScore:         pred.RiskScore,
			AIRankingScore:    pred.AIRankingScore,
			Priority:          pred.Priority,
			Reasoning:         string(reasoningJSON),
			RecommendedAction: pred.RecommendedAction,
			PredictedFor:      predictedFor,
		})
	}

	if err := s.analyticsRepository.UpsertRiskPredictions(ctx, rows); err != nil {
		log.Printf("failed to snapshot risk predictions: %v", err)
	}
}

func (s *analyticsService) snapshotWaste(ctx context.Context, userID string, estimate domain.WasteEstimate, now time.Time) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return
	}

	byCategoryJSON, _ := json.Marshal(estimate.ByCategory)
	snapshot := &entities.WasteSnapshot{
		ID:          uuid.New(),
		UserID:      userUUID,
		Period:      estimate.Period,
		WasteGrams:  estimate.TotalWasteGrams,
		WasteCost:   estimate.TotalWasteCost,
		TrendFactor: estimate.TrendFactor,
		ByCategory:  string(byCategoryJSON),
		CapturedOn:  truncateToDay(now),
	}

	if err := s.analyticsRepository.UpsertWasteSnapshot(ctx, snapshot); err != nil {
		log.Printf("failed to snapshot waste estimate: %v", err)
	}
}

func validPeriod(period string) error {
	switch period {
	case domain.PeriodWeek, domain.PeriodMonth, domain.PeriodYear:
		return nil
	default:
		return domain.ErrInvalidPeriod
	}
}
