package mealplan

import (
	"testing"
	"time"

	"foodwise-backend/domain"
	"foodwise-backend/entities"
	"foodwise-backend/pkg/analytics"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planItem(name, category, status string, expiry *time.Time) entities.InventoryItem {
	return entities.InventoryItem{
		ID:             uuid.New(),
		ItemName:       name,
		Category:       category,
		Quantity:       1,
		Unit:           "serving",
		ExpirationDate: expiry,
		Status:         status,
	}
}

func catalogItem(name, category string, cost float64) entities.FoodCatalogItem {
	return entities.FoodCatalogItem{
		ID:                uuid.New(),
		Name:              name,
		Category:          category,
		SampleCostPerUnit: cost,
		Unit:              "serving",
	}
}

func TestOptimizeDefaultsToSevenDays(t *testing.T) {
	optimizer := NewOptimizer(analytics.DefaultTables())

	plan := optimizer.Optimize(nil, nil, 1, 50, "low", 0)

	assert.Len(t, plan.Days, DefaultPlanDays)
	assert.Equal(t, 50.0, plan.Budget)
	assert.Equal(t, "low", plan.BudgetRange)
}

func TestOptimizePrefersExpiringInventory(t *testing.T) {
	optimizer := NewOptimizer(analytics.DefaultTables())
	expiry := time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC)

	items := []entities.InventoryItem{
		planItem("Old Bread", "grain", entities.StatusExpiringSoon, &expiry),
		planItem("Fresh Rice", "grain", entities.StatusFresh, nil),
	}
	catalog := []entities.FoodCatalogItem{
		catalogItem("Pasta", "grain", 2.00),
	}

	plan := optimizer.Optimize(items, catalog, 1, 50, "medium", 1)

	require.Len(t, plan.Days, 1)
	require.NotEmpty(t, plan.Days[0].Meals)

	breakfast := plan.Days[0].Meals[0]
	assert.Equal(t, "breakfast", breakfast.Meal)
	assert.Equal(t, "Old Bread", breakfast.ItemName)
	assert.Equal(t, "inventory", breakfast.Source)
	assert.Equal(t, 0.0, breakfast.Cost)
	assert.Equal(t, 2, plan.InventoryUsed)
}

func TestOptimizeSlotCategories(t *testing.T) {
	optimizer := NewOptimizer(analytics.DefaultTables())

	catalog := []entities.FoodCatalogItem{
		catalogItem("Bread", "grain", 1.00),
		catalogItem("Apple", "fruit", 0.50),
		catalogItem("Milk", "dairy", 1.50),
		catalogItem("Carrot", "vegetable", 0.80),
		catalogItem("Chicken", "meat", 3.00),
	}

	allowed := map[string]map[string]bool{
		"breakfast": {"grain": true, "fruit": true, "dairy": true},
		"lunch":     {"vegetable": true, "meat": true, "grain": true},
		"dinner":    {"meat": true, "vegetable": true, "grain": true},
	}

	plan := optimizer.Optimize(nil, catalog, 2, 100, "high", 7)

	for _, dayPlan := range plan.Days {
		for _, meal := range dayPlan.Meals {
			assert.True(t, allowed[meal.Meal][meal.Category],
				"meal %s got category %s", meal.Meal, meal.Category)
		}
	}
}

func TestOptimizeNeverExceedsBudget(t *testing.T) {
	optimizer := NewOptimizer(analytics.DefaultTables())

	catalog := []entities.FoodCatalogItem{
		catalogItem("Bread", "grain", 2.50),
		catalogItem("Apple", "fruit", 0.50),
		catalogItem("Chicken", "meat", 8.00),
		catalogItem("Carrot", "vegetable", 1.20),
	}

	budget := 10.0
	plan := optimizer.Optimize(nil, catalog, 1, budget, "low", 14)

	var spent float64
	for _, dayPlan := range plan.Days {
		for _, meal := range dayPlan.Meals {
			if meal.Source == "catalog" {
				spent += meal.Cost
				assert.LessOrEqual(t, spent, budget,
					"cumulative spend exceeded the budget mid-plan")
			}
		}
	}
	assert.LessOrEqual(t, plan.TotalCost, budget)
}

func TestOptimizeAggregatesShoppingList(t *testing.T) {
	optimizer := NewOptimizer(analytics.DefaultTables())

	catalog := []entities.FoodCatalogItem{
		catalogItem("Apple", "fruit", 0.50),
	}

	plan := optimizer.Optimize(nil, catalog, 1, 50, "medium", 3)

	require.Len(t, plan.ShoppingList, 1)
	entry := plan.ShoppingList[0]
	assert.Equal(t, "Apple", entry.ItemName)
	// one breakfast serving per day, the only slot fruit satisfies
	assert.Equal(t, 3.0, entry.Quantity)
	assert.InDelta(t, 1.50, entry.Cost, 1e-9)
	assert.InDelta(t, plan.TotalCost, entry.Cost, 1e-9)
}

func TestSubstitutesForCheaperCategories(t *testing.T) {
	optimizer := NewOptimizer(analytics.DefaultTables())

	catalog := []entities.FoodCatalogItem{
		catalogItem("Rice", "grain", 1.50),
		catalogItem("Milk", "dairy", 7.00),
	}
	expensive := domain.ShoppingListItem{
		ItemName: "Chicken",
		Category: "meat",
		Quantity: 1,
		Cost:     8.00,
	}

	// grain at 1.50 beats the 20% saving threshold; dairy at 7.00 does not
	substitutes := optimizer.substitutesFor(expensive, catalog)
	assert.Equal(t, []string{"grain"}, substitutes)

	catalog = append(catalog, catalogItem("Cheap Yogurt", "dairy", 2.00))
	substitutes = optimizer.substitutesFor(expensive, catalog)
	assert.Len(t, substitutes, maxSubstitutes)
}

func TestOptimizeNutritionSummaryMatchesAssignments(t *testing.T) {
	tables := analytics.DefaultTables()
	optimizer := NewOptimizer(tables)

	catalog := []entities.FoodCatalogItem{
		catalogItem("Apple", "fruit", 0.50),
		catalogItem("Chicken", "meat", 3.00),
		catalogItem("Bread", "grain", 1.00),
	}

	plan := optimizer.Optimize(nil, catalog, 1, 100, "high", 2)

	var calories float64
	for _, dayPlan := range plan.Days {
		for _, meal := range dayPlan.Meals {
			calories += tables.NutritionPerServing[meal.Category].Calories
		}
	}
	assert.InDelta(t, calories, plan.NutritionSummary["calories"], 1e-9)
}
