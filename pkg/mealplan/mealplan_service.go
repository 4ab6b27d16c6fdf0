package mealplan

import (
	"context"
	"fmt"
	"log"
	"strings"

	"foodwise-backend/domain"
	"foodwise-backend/entities"
	"foodwise-backend/pkg/advisor"
	"foodwise-backend/pkg/analytics"
	"foodwise-backend/pkg/catalog"
	"foodwise-backend/pkg/inventory"
	"foodwise-backend/pkg/user"
)

const (
	methodRuleBased  = "rule_based"
	methodAIAssisted = "ai_assisted"
)

type (
	MealPlanService interface {
		Optimize(ctx context.Context, req domain.OptimizeMealPlanRequest, userID string) (domain.MealPlanResponse, error)
	}

	mealPlanService struct {
		inventoryRepository inventory.InventoryRepository
		catalogRepository   catalog.CatalogRepository
		userRepository      user.UserRepository
		gemini              *advisor.GeminiClient
		optimizer           *Optimizer
		tables              analytics.Tables
	}
)

func NewMealPlanService(
	inventoryRepository inventory.InventoryRepository,
	catalogRepository catalog.CatalogRepository,
	userRepository user.UserRepository,
	gemini *advisor.GeminiClient,
	tables analytics.Tables,
) MealPlanService {
	return &mealPlanService{
		inventoryRepository: inventoryRepository,
		catalogRepository:   catalogRepository,
		userRepository:      userRepository,
		gemini:              gemini,
		optimizer:           NewOptimizer(tables),
		tables:              tables,
	}
}

func (s *mealPlanService) Optimize(ctx context.Context, req domain.OptimizeMealPlanRequest, userID string) (domain.MealPlanResponse, error) {
	if req.Days < 0 || req.Days > 14 {
		return domain.MealPlanResponse{}, domain.ErrInvalidPlanDays
	}

	days := req.Days
	if days == 0 {
		days = DefaultPlanDays
	}

	householdSize := 1
	budgetRange := req.BudgetRange
	if owner, err := s.userRepository.GetUserByID(ctx, userID); err == nil {
		if owner.HouseholdSize > 0 {
			householdSize = owner.HouseholdSize
		}
		if budgetRange == "" {
			budgetRange = owner.BudgetRange
		}
	} else {
		log.Printf("meal plan falling back to default profile: %v", err)
	}
	if budgetRange == "" {
		budgetRange = "medium"
	}

	budget, ok := s.tables.BudgetByRange[budgetRange]
	if !ok {
		budget = s.tables.BudgetByRange["medium"]
	}
	if req.BudgetLimit != nil && *req.BudgetLimit > 0 {
		budget = *req.BudgetLimit
	}

	itemPtrs, err := s.inventoryRepository.GetActiveItems(ctx, userID)
	if err != nil {
		return domain.MealPlanResponse{}, err
	}
	items := make([]entities.InventoryItem, 0, len(itemPtrs))
	for _, item := range itemPtrs {
		items = append(items, *item)
	}

	catalogPtrs, err := s.catalogRepository.GetByCategories(ctx, planCategories)
	if err != nil {
		return domain.MealPlanResponse{}, err
	}
	catalogItems := make([]entities.FoodCatalogItem, 0, len(catalogPtrs))
	for _, item := range catalogPtrs {
		catalogItems = append(catalogItems, *item)
	}

	plan := s.optimizer.Optimize(items, catalogItems, householdSize, budget, budgetRange, days)
	plan.OptimizationMethod = methodRuleBased

	if req.UseLLM && s.gemini.Configured() {
		summary, err := s.gemini.GenerateText(ctx, summaryPrompt(plan))
		if err != nil {
			log.Printf("meal plan ai summary failed, keeping rule-based plan: %v", err)
		} else {
			plan.AISummary = summary
			plan.OptimizationMethod = methodAIAssisted
		}
	}

	return plan, nil
}

// summaryPrompt condenses the generated plan so the model comments on it
// instead of inventing a different one.
func summaryPrompt(plan domain.MealPlanResponse) string {
	var shopping []string
	for _, item := range plan.ShoppingList {
		shopping = append(shopping, fmt.Sprintf("%s x%.0f ($%.2f)", item.ItemName, item.Quantity, item.Cost))
	}

	return fmt.Sprintf(`You are a meal planning assistant. A %d-day meal plan was generated:
- Budget: $%.2f (%s range), planned spend $%.2f
- Inventory items reused: %d
- Shopping list: %s

In 3-4 friendly sentences, summarize how this plan saves money and reduces
food waste, and suggest one practical cooking tip for the week.`,
		len(plan.Days), plan.Budget, plan.BudgetRange, plan.TotalCost,
		plan.InventoryUsed, strings.Join(shopping, ", "))
}
