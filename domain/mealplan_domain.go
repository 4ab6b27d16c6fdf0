package domain

import "errors"

var (
	MessageSuccessOptimizeMealPlan = "meal plan generated successfully"
	MessageFailedOptimizeMealPlan  = "failed to generate meal plan"

	ErrInvalidPlanDays = errors.New("days must be between 1 and 14")
)

type (
	OptimizeMealPlanRequest struct {
		Days        int      `json:"days" validate:"omitempty,min=1,max=14"`
		BudgetRange string   `json:"budget_range" validate:"omitempty,oneof=low medium high"`
		BudgetLimit *float64 `json:"budget_limit" validate:"omitempty,gt=0"`
		UseLLM      bool     `json:"use_llm"`
	}

	MealAssignment struct {
		Meal         string   `json:"meal"` // breakfast, lunch, dinner
		ItemName     string   `json:"item_name"`
		Category     string   `json:"category"`
		Quantity     float64  `json:"quantity"`
		Unit         string   `json:"unit"`
		Source       string   `json:"source"` // inventory, catalog
		Cost         float64  `json:"cost"`
		ValueDensity float64  `json:"value_density"`
		Substitutes  []string `json:"substitutes,omitempty"`
	}

	DayPlan struct {
		Day      int              `json:"day"`
		Meals    []MealAssignment `json:"meals"`
		DayCost  float64          `json:"day_cost"`
		Calories float64          `json:"calories"`
		Protein  float64          `json:"protein"`
	}

	ShoppingListItem struct {
		ItemName    string   `json:"item_name"`
		Category    string   `json:"category"`
		Quantity    float64  `json:"quantity"`
		Unit        string   `json:"unit"`
		Cost        float64  `json:"cost"`
		Substitutes []string `json:"substitutes,omitempty"`
	}

	MealPlanResponse struct {
		Days             []DayPlan          `json:"days"`
		ShoppingList     []ShoppingListItem `json:"shopping_list"`
		TotalCost        float64            `json:"total_cost"`
		Budget           float64            `json:"budget"`
		BudgetRange      string             `json:"budget_range"`
		InventoryUsed    int                `json:"inventory_items_used"`
		NutritionSummary map[string]float64 `json:"nutrition_summary"`

		OptimizationMethod string `json:"optimization_method"`
		AISummary          string `json:"ai_summary,omitempty"`
	}
)
