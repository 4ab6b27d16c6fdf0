package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"foodwise-backend/domain"
	"foodwise-backend/entities"
	"foodwise-backend/pkg/analytics"
	"foodwise-backend/pkg/consumption"
	"foodwise-backend/pkg/inventory"
)

const systemPrompt = `You are an expert assistant for food management, sustainability and nutrition.
Your capabilities: reducing food waste, balancing nutrition, budget meal planning,
transforming leftovers, local food sharing, and explaining environmental impact.
Always be friendly, practical and concise, reference the user's actual inventory
when relevant, and give specific, actionable advice.`

type (
	AdvisorService interface {
		Ask(ctx context.Context, req domain.AskAdvisorRequest, userID string) (domain.AdvisorResponse, error)
		GenerateInsights(ctx context.Context, wasteScore, nutritionScore, sustainabilityScore float64) ([]domain.SDGInsight, error)
	}

	advisorService struct {
		gemini                *GeminiClient
		inventoryRepository   inventory.InventoryRepository
		consumptionRepository consumption.ConsumptionRepository
		tables                analytics.Tables
		wasteEstimator        *analytics.WasteEstimator
	}
)

func NewAdvisorService(
	gemini *GeminiClient,
	inventoryRepository inventory.InventoryRepository,
	consumptionRepository consumption.ConsumptionRepository,
	tables analytics.Tables,
) AdvisorService {
	return &advisorService{
		gemini:                gemini,
		inventoryRepository:   inventoryRepository,
		consumptionRepository: consumptionRepository,
		tables:                tables,
		wasteEstimator:        analytics.NewWasteEstimator(tables),
	}
}

// Ask answers a free-form question. With Gemini configured the reply comes
// from the model; otherwise, or on any model failure, the rule-based tips
// answer with the same response shape.
func (s *advisorService) Ask(ctx context.Context, req domain.AskAdvisorRequest, userID string) (domain.AdvisorResponse, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return domain.AdvisorResponse{}, domain.ErrEmptyQuestion
	}

	intent := detectIntent(question)
	userContext := s.buildContext(ctx, userID)

	if s.gemini.Configured() {
		prompt := fmt.Sprintf("%s\n\nUser Context:\n%s\n\nQuestion: %s", systemPrompt, userContext.format(), question)
		reply, err := s.gemini.GenerateText(ctx, prompt)
		if err == nil {
			return domain.AdvisorResponse{
				Reply:  reply,
				Source: domain.AdvisorSourceAI,
				Intent: intent,
			}, nil
		}
		log.Printf("gemini reply failed, using rule-based fallback: %v", err)
	}

	return domain.AdvisorResponse{
		Reply:  ruleBasedReply(intent, userContext),
		Source: domain.AdvisorSourceRuleBase,
		Intent: intent,
	}, nil
}

// GenerateInsights asks the model for structured impact insights. Callers
// fall back to the rule-based insights when this errors.
func (s *advisorService) GenerateInsights(ctx context.Context, wasteScore, nutritionScore, sustainabilityScore float64) ([]domain.SDGInsight, error) {
	if !s.gemini.Configured() {
		return nil, fmt.Errorf("%w: %w", analytics.ErrInsightsUnavailable, ErrGeminiNotConfigured)
	}

	overall := wasteScore*0.4 + nutritionScore*0.35 + sustainabilityScore*0.25
	prompt := fmt.Sprintf(`Analyze these weekly food sustainability scores and provide 3-5 specific insights.

Current Scores:
- Overall: %.1f/100
- Waste Reduction: %.1f/100
- Nutrition: %.1f/100
- Sustainability: %.1f/100

Respond ONLY with a valid JSON object in this shape:
{"insights": [{"type": "success|warning|info", "category": "waste|nutrition|sustainability|overall", "message": "...", "impact": "high|medium|low", "improvement_potential": "X points"}]}`,
		overall, wasteScore, nutritionScore, sustainabilityScore)

	text, err := s.gemini.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Insights []domain.SDGInsight `json:"insights"`
	}
	if err := json.Unmarshal([]byte(ExtractJSON(text)), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse gemini insights: %w", err)
	}
	return parsed.Insights, nil
}

type advisorContext struct {
	expiringItems []string
	wasteGrams    float64
	wasteCost     float64
	topCategories []string
}

func (c advisorContext) format() string {
	var lines []string
	if len(c.expiringItems) > 0 {
		lines = append(lines, "Items expiring soon: "+strings.Join(c.expiringItems, ", "))
	}
	if c.wasteGrams > 0 {
		lines = append(lines, fmt.Sprintf("Weekly waste: %.0fg ($%.2f)", c.wasteGrams, c.wasteCost))
	}
	if len(c.topCategories) > 0 {
		lines = append(lines, "Most consumed categories: "+strings.Join(c.topCategories, ", "))
	}
	if len(lines) == 0 {
		return "No inventory or consumption data recorded yet."
	}
	return strings.Join(lines, "\n")
}

func (s *advisorService) buildContext(ctx context.Context, userID string) advisorContext {
	var built advisorContext

	itemPtrs, err := s.inventoryRepository.GetAllItems(ctx, userID)
	if err != nil {
		log.Printf("advisor context: failed to load inventory: %v", err)
		return built
	}

	items := make([]entities.InventoryItem, 0, len(itemPtrs))
	for _, item := range itemPtrs {
		items = append(items, *item)
		if item.Status == entities.StatusExpiringSoon && len(built.expiringItems) < 5 {
			built.expiringItems = append(built.expiringItems, item.ItemName)
		}
	}

	now := time.Now()
	logPtrs, err := s.consumptionRepository.GetLogsSince(ctx, userID, now.AddDate(0, 0, -30))
	if err != nil {
		log.Printf("advisor context: failed to load consumption logs: %v", err)
		return built
	}
	logs := make([]entities.ConsumptionLog, 0, len(logPtrs))
	for _, l := range logPtrs {
		logs = append(logs, *l)
	}

	patterns := analytics.AnalyzePatterns(logs, now)
	weekly := s.wasteEstimator.EstimateWeekly(items, patterns, now)
	built.wasteGrams = weekly.TotalWasteGrams
	built.wasteCost = weekly.TotalWasteCost

	type categoryTotal struct {
		category string
		total    float64
	}
	totals := make([]categoryTotal, 0, len(patterns))
	for category, pattern := range patterns {
		totals = append(totals, categoryTotal{category, pattern.TotalConsumed})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].total > totals[j].total })
	for i, t := range totals {
		if i == 3 {
			break
		}
		built.topCategories = append(built.topCategories, t.category)
	}

	return built
}

func detectIntent(message string) string {
	messageLower := strings.ToLower(message)

	bestIntent := IntentGeneral
	bestScore := 0
	for _, intent := range []string{
		IntentWasteReduction, IntentNutrition, IntentMealPlanning,
		IntentLeftovers, IntentSharing, IntentEnvironment,
	} {
		score := 0
		for _, keyword := range intentKeywords[intent] {
			if strings.Contains(messageLower, keyword) {
				score++
			}
		}
		if score > bestScore {
			bestIntent = intent
			bestScore = score
		}
	}
	return bestIntent
}

func ruleBasedReply(intent string, userContext advisorContext) string {
	tips := tipsDatabase[intent]
	if len(tips) > 5 {
		tips = tips[:5]
	}

	var parts []string
	switch intent {
	case IntentWasteReduction:
		if len(userContext.expiringItems) > 0 {
			parts = append(parts, fmt.Sprintf("I see you have items that need attention: %s.", strings.Join(userContext.expiringItems, ", ")))
			parts = append(parts, "Here's how to reduce waste:")
		} else {
			parts = append(parts, "Great! You don't have items expiring soon. Here are tips to prevent waste:")
		}
		parts = append(parts, numberedTips(tips)...)
		if userContext.wasteGrams > 0 {
			parts = append(parts, fmt.Sprintf("Your current weekly waste: %.0f grams ($%.2f). Try to reduce this by using items before they expire!",
				userContext.wasteGrams, userContext.wasteCost))
		}

	case IntentNutrition:
		parts = append(parts, "Here's some nutrition guidance:")
		parts = append(parts, numberedTips(tips)...)
		if len(userContext.topCategories) > 0 {
			parts = append(parts, fmt.Sprintf("I notice you mostly consume: %s. Aim for variety across all food groups for balanced nutrition!",
				strings.Join(userContext.topCategories, ", ")))
		}

	case IntentMealPlanning:
		parts = append(parts, "Let's plan your meals!")
		if len(userContext.expiringItems) > 0 {
			parts = append(parts, "First, use these items: "+strings.Join(userContext.expiringItems, ", "))
		}
		parts = append(parts, numberedTips(tips)...)
		parts = append(parts, "Tip: Check your inventory first, then plan meals around what you have!")

	case IntentLeftovers:
		parts = append(parts, "Creative leftover transformation ideas:")
		parts = append(parts, numberedTips(tips)...)

	case IntentSharing:
		parts = append(parts, "Food sharing opportunities:")
		parts = append(parts, numberedTips(tips)...)
		if len(userContext.expiringItems) > 0 {
			parts = append(parts, fmt.Sprintf("You could share: %s. These items are still good but expiring soon - perfect for sharing!",
				strings.Join(userContext.expiringItems, ", ")))
		}

	case IntentEnvironment:
		parts = append(parts, "Your food choices impact the environment!")
		if userContext.wasteGrams > 0 {
			parts = append(parts, fmt.Sprintf("Weekly waste: %.0f grams ($%.2f) - this waste contributes to greenhouse gas emissions.",
				userContext.wasteGrams, userContext.wasteCost))
		} else {
			parts = append(parts, "Great job! Your waste is minimal.")
		}
		parts = append(parts, "Ways to reduce environmental impact:")
		parts = append(parts, numberedTips(tips)...)

	default:
		parts = append(parts,
			"Hi! I'm your food management assistant. I can help with:",
			"- Reducing food waste",
			"- Nutrition and healthy eating",
			"- Meal planning and budgeting",
			"- Creative leftover recipes",
			"- Food sharing opportunities",
			"- Environmental impact",
			"What would you like to know?")
	}

	return strings.Join(parts, "\n")
}

func numberedTips(tips []string) []string {
	numbered := make([]string, 0, len(tips))
	for i, tip := range tips {
		numbered = append(numbered, fmt.Sprintf("%d. %s", i+1, tip))
	}
	return numbered
}
