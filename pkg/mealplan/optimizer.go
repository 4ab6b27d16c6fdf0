package mealplan

import (
	"math"
	"sort"

	"foodwise-backend/domain"
	"foodwise-backend/entities"
	"foodwise-backend/pkg/analytics"
)

const (
	DefaultPlanDays = 7

	// Substitutes are suggested once shopping spend crosses this share of
	// the budget, and only when the swap saves at least minSubstituteSaving.
	substituteBudgetShare = 0.8
	minSubstituteSaving   = 0.2
	maxSubstitutes        = 2
)

var (
	mealSlots = []string{"breakfast", "lunch", "dinner"}

	mealCategories = map[string][]string{
		"breakfast": {"grain", "fruit", "dairy"},
		"lunch":     {"vegetable", "meat", "grain"},
		"dinner":    {"meat", "vegetable", "grain"},
	}

	// planCategories is the union of the slot categories; catalog items
	// outside it can never be assigned to a meal.
	planCategories = []string{"grain", "fruit", "dairy", "vegetable", "meat"}

	substitutionMap = map[string][]string{
		"meat":  {"grain", "dairy"},
		"dairy": {"grain", "vegetable"},
		"fruit": {"vegetable", "grain"},
		"snack": {"fruit", "grain"},
	}
)

// Optimizer builds meal plans with a greedy, priority-ordered allocation:
// expiring inventory first, then fresh inventory, then catalog purchases by
// value density. Greedy is deliberate; it will not always find the global
// optimum but it is fast and its choices are explainable.
type Optimizer struct {
	tables analytics.Tables
}

func NewOptimizer(tables analytics.Tables) *Optimizer {
	return &Optimizer{tables: tables}
}

func (o *Optimizer) Optimize(items []entities.InventoryItem, catalog []entities.FoodCatalogItem, householdSize int, budget float64, budgetRange string, days int) domain.MealPlanResponse {
	if days <= 0 {
		days = DefaultPlanDays
	}
	if householdSize < 1 {
		householdSize = 1
	}

	remaining := make(map[string]float64, len(o.tables.DailyTargets))
	for nutrient, daily := range o.tables.DailyTargets {
		remaining[nutrient] = daily * float64(days) * float64(householdSize)
	}

	available := availableInventory(items)
	used := make(map[string]bool, len(available))
	consumed := map[string]float64{"calories": 0, "protein": 0, "fiber": 0, "vitamins": 0}

	plan := domain.MealPlanResponse{
		Budget:      budget,
		BudgetRange: budgetRange,
	}
	remainingBudget := budget
	shoppingNeeds := make(map[string]*domain.ShoppingListItem)
	var shoppingOrder []string

	for day := 1; day <= days; day++ {
		dayPlan := domain.DayPlan{Day: day}

		for _, slot := range mealSlots {
			preferred := mealCategories[slot]

			assignment, ok := o.pickInventory(available, used, preferred, entities.StatusExpiringSoon)
			if !ok {
				assignment, ok = o.pickInventory(available, used, preferred, entities.StatusFresh)
			}
			if !ok {
				assignment, ok = o.pickCatalog(catalog, preferred, remaining, remainingBudget)
				if ok {
					remainingBudget -= assignment.Cost
					need, seen := shoppingNeeds[assignment.ItemName]
					if !seen {
						need = &domain.ShoppingListItem{
							ItemName: assignment.ItemName,
							Category: assignment.Category,
							Unit:     assignment.Unit,
						}
						shoppingNeeds[assignment.ItemName] = need
						shoppingOrder = append(shoppingOrder, assignment.ItemName)
					}
					need.Quantity += assignment.Quantity
					need.Cost += assignment.Cost
				}
			}
			if !ok {
				continue
			}

			assignment.Meal = slot
			nutrition := o.tables.NutritionPerServing[assignment.Category]
			decrement(remaining, consumed, nutrition)

			dayPlan.Meals = append(dayPlan.Meals, assignment)
			dayPlan.DayCost += assignment.Cost
			dayPlan.Calories += nutrition.Calories
			dayPlan.Protein += nutrition.Protein
			if assignment.Source == "inventory" {
				plan.InventoryUsed++
			}
		}

		plan.Days = append(plan.Days, dayPlan)
	}

	plan.ShoppingList = o.buildShoppingList(shoppingNeeds, shoppingOrder, catalog, budget)
	for _, item := range plan.ShoppingList {
		plan.TotalCost += item.Cost
	}
	plan.NutritionSummary = consumed

	return plan
}

func (o *Optimizer) pickInventory(available []entities.InventoryItem, used map[string]bool, preferred []string, status string) (domain.MealAssignment, bool) {
	for _, category := range preferred {
		for _, item := range available {
			if used[item.ID.String()] || item.Status != status || item.Category != category {
				continue
			}
			used[item.ID.String()] = true
			return domain.MealAssignment{
				ItemName: item.ItemName,
				Category: item.Category,
				Quantity: item.Quantity,
				Unit:     item.Unit,
				Source:   "inventory",
			}, true
		}
	}
	return domain.MealAssignment{}, false
}

func (o *Optimizer) pickCatalog(catalog []entities.FoodCatalogItem, preferred []string, remaining map[string]float64, remainingBudget float64) (domain.MealAssignment, bool) {
	preferredSet := make(map[string]bool, len(preferred))
	for _, category := range preferred {
		preferredSet[category] = true
	}

	best := -1
	bestDensity := 0.0
	for i, item := range catalog {
		if !preferredSet[item.Category] || item.SampleCostPerUnit > remainingBudget {
			continue
		}
		density := o.valueDensity(item, remaining)
		if best == -1 || density > bestDensity {
			best = i
			bestDensity = density
		}
	}
	if best == -1 {
		return domain.MealAssignment{}, false
	}

	item := catalog[best]
	return domain.MealAssignment{
		ItemName:     item.Name,
		Category:     item.Category,
		Quantity:     1,
		Unit:         "serving",
		Source:       "catalog",
		Cost:         item.SampleCostPerUnit,
		ValueDensity: bestDensity,
	}, true
}

// valueDensity scores nutrition gained per dollar. Each nutrient contributes
// its fraction of the remaining target, capped at 1.0 so a single oversized
// nutrient cannot dominate the score.
func (o *Optimizer) valueDensity(item entities.FoodCatalogItem, remaining map[string]float64) float64 {
	nutrition := o.tables.NutritionPerServing[item.Category]
	score := contribution(remaining["calories"], nutrition.Calories) +
		contribution(remaining["protein"], nutrition.Protein) +
		contribution(remaining["fiber"], nutrition.Fiber) +
		contribution(remaining["vitamins"], nutrition.Vitamins)
	return score / math.Max(item.SampleCostPerUnit, 0.01)
}

func contribution(remaining, value float64) float64 {
	if remaining <= 0 || value <= 0 {
		return 0
	}
	return math.Min(1, value/remaining)
}

func (o *Optimizer) buildShoppingList(needs map[string]*domain.ShoppingListItem, order []string, catalog []entities.FoodCatalogItem, budget float64) []domain.ShoppingListItem {
	list := make([]domain.ShoppingListItem, 0, len(order))

	var cumulative float64
	for _, name := range order {
		item := *needs[name]
		cumulative += item.Cost

		if budget > 0 && cumulative > budget*substituteBudgetShare {
			item.Substitutes = o.substitutesFor(item, catalog)
		}

		list = append(list, item)
	}
	return list
}

func (o *Optimizer) substitutesFor(item domain.ShoppingListItem, catalog []entities.FoodCatalogItem) []string {
	candidates := substitutionMap[item.Category]
	if len(candidates) == 0 || item.Quantity <= 0 {
		return nil
	}
	unitCost := item.Cost / item.Quantity

	var substitutes []string
	for _, category := range candidates {
		cheapest := cheapestInCategory(catalog, category)
		if cheapest == nil {
			continue
		}
		if cheapest.SampleCostPerUnit <= unitCost*(1-minSubstituteSaving) {
			substitutes = append(substitutes, category)
		}
		if len(substitutes) == maxSubstitutes {
			break
		}
	}
	return substitutes
}

func cheapestInCategory(catalog []entities.FoodCatalogItem, category string) *entities.FoodCatalogItem {
	var cheapest *entities.FoodCatalogItem
	for i := range catalog {
		if catalog[i].Category != category {
			continue
		}
		if cheapest == nil || catalog[i].SampleCostPerUnit < cheapest.SampleCostPerUnit {
			cheapest = &catalog[i]
		}
	}
	return cheapest
}

func availableInventory(items []entities.InventoryItem) []entities.InventoryItem {
	available := make([]entities.InventoryItem, 0, len(items))
	for _, item := range items {
		if item.Status == entities.StatusFresh || item.Status == entities.StatusExpiringSoon {
			available = append(available, item)
		}
	}
	// Earliest expiry first, undated items last.
	sort.SliceStable(available, func(i, j int) bool {
		a, b := available[i].ExpirationDate, available[j].ExpirationDate
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.Before(*b)
	})
	return available
}

func decrement(remaining, consumed map[string]float64, nutrition analytics.Nutrition) {
	apply := func(nutrient string, value float64) {
		consumed[nutrient] += value
		remaining[nutrient] = math.Max(0, remaining[nutrient]-value)
	}
	apply("calories", nutrition.Calories)
	apply("protein", nutrition.Protein)
	apply("fiber", nutrition.Fiber)
	apply("vitamins", nutrition.Vitamins)
}
