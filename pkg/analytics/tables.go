package analytics

type (
	// CategoryRate holds per-category shelf-life characteristics.
	CategoryRate struct {
		BaseDays          int
		RiskMultiplier    float64
		SeasonalSensitive bool
	}

	Nutrition struct {
		Calories float64
		Protein  float64
		Fiber    float64
		Vitamins float64
	}

	CommunityAverage struct {
		Grams float64
		Cost  float64
	}

	// Tables bundles the scoring constants so they can be injected and
	// overridden in tests. DefaultTables returns the production values.
	Tables struct {
		CategoryRates   map[string]CategoryRate
		SeasonalFactors map[string]map[string]float64
		WasteRates      map[string]float64
		AvgCostPerUnit  map[string]float64
		UnitGrams       map[string]float64

		CommunityAverages map[string]CommunityAverage

		ExpectedDistribution map[string]float64
		NutrientDatabase     map[string]map[string]float64
		DailyRequirements    map[string]float64

		NutritionPerServing map[string]Nutrition
		DailyTargets        map[string]float64
		BudgetByRange       map[string]float64
	}
)

const (
	DefaultWasteRate   = 0.15
	DefaultCostPerUnit = 3.00
	DefaultUnitGrams   = 100.0
)

// UnknownCategoryRate applies to categories missing from the rate table.
var UnknownCategoryRate = CategoryRate{BaseDays: 14, RiskMultiplier: 1.0, SeasonalSensitive: false}

func DefaultTables() Tables {
	return Tables{
		CategoryRates: map[string]CategoryRate{
			"fruit":     {BaseDays: 7, RiskMultiplier: 1.5, SeasonalSensitive: true},
			"vegetable": {BaseDays: 10, RiskMultiplier: 1.3, SeasonalSensitive: true},
			"dairy":     {BaseDays: 5, RiskMultiplier: 1.4, SeasonalSensitive: true},
			"meat":      {BaseDays: 3, RiskMultiplier: 1.6, SeasonalSensitive: true},
			"grain":     {BaseDays: 30, RiskMultiplier: 0.8, SeasonalSensitive: false},
			"beverage":  {BaseDays: 14, RiskMultiplier: 1.0, SeasonalSensitive: false},
			"snack":     {BaseDays: 60, RiskMultiplier: 0.7, SeasonalSensitive: false},
			"frozen":    {BaseDays: 90, RiskMultiplier: 0.5, SeasonalSensitive: false},
			"canned":    {BaseDays: 365, RiskMultiplier: 0.3, SeasonalSensitive: false},
			"other":     {BaseDays: 14, RiskMultiplier: 1.0, SeasonalSensitive: false},
		},
		SeasonalFactors: map[string]map[string]float64{
			"spring": {"fruit": 1.2, "vegetable": 1.1, "dairy": 1.0, "meat": 1.0},
			"summer": {"fruit": 1.5, "vegetable": 1.3, "dairy": 1.2, "meat": 1.1},
			"autumn": {"fruit": 1.1, "vegetable": 1.0, "dairy": 1.0, "meat": 1.0},
			"winter": {"fruit": 0.9, "vegetable": 0.8, "dairy": 0.9, "meat": 1.0},
		},
		WasteRates: map[string]float64{
			"vegetable": 0.25,
			"fruit":     0.20,
			"dairy":     0.15,
			"meat":      0.10,
			"grain":     0.05,
			"beverage":  0.08,
			"snack":     0.12,
			"other":     0.15,
		},
		AvgCostPerUnit: map[string]float64{
			"vegetable": 2.50,
			"fruit":     3.00,
			"dairy":     4.00,
			"meat":      8.00,
			"grain":     2.00,
			"beverage":  2.50,
			"snack":     3.50,
			"other":     3.00,
		},
		UnitGrams: map[string]float64{
			"kg":      1000,
			"g":       1,
			"lb":      453.592,
			"oz":      28.3495,
			"l":       1000,
			"ml":      1,
			"cup":     240,
			"piece":   150,
			"serving": 200,
			"pack":    500,
		},
		CommunityAverages: map[string]CommunityAverage{
			"week":  {Grams: 500, Cost: 15.00},
			"month": {Grams: 2000, Cost: 60.00},
			"year":  {Grams: 24000, Cost: 720.00},
		},
		ExpectedDistribution: map[string]float64{
			"vegetable": 0.30,
			"fruit":     0.20,
			"grain":     0.25,
			"dairy":     0.10,
			"meat":      0.10,
			"other":     0.05,
		},
		NutrientDatabase: map[string]map[string]float64{
			"vegetable": {"vitamin_c": 50, "fiber": 30, "vitamin_a": 40, "iron": 10},
			"fruit":     {"vitamin_c": 80, "fiber": 25, "vitamin_a": 20, "potassium": 60},
			"dairy":     {"calcium": 90, "protein": 40, "vitamin_d": 30, "vitamin_b12": 50},
			"meat":      {"protein": 80, "iron": 60, "vitamin_b12": 70, "zinc": 50},
			"grain":     {"fiber": 40, "iron": 20, "vitamin_b": 30, "protein": 15},
		},
		DailyRequirements: map[string]float64{
			"vitamin_c":   90,
			"fiber":       25,
			"vitamin_a":   900,
			"iron":        18,
			"calcium":     1000,
			"protein":     50,
			"vitamin_d":   20,
			"vitamin_b12": 2.4,
			"potassium":   3500,
			"zinc":        11,
			"vitamin_b":   1.5,
		},
		NutritionPerServing: map[string]Nutrition{
			"vegetable": {Calories: 25, Protein: 2, Fiber: 3, Vitamins: 8},
			"fruit":     {Calories: 60, Protein: 1, Fiber: 2, Vitamins: 9},
			"dairy":     {Calories: 150, Protein: 8, Fiber: 0, Vitamins: 5},
			"meat":      {Calories: 200, Protein: 25, Fiber: 0, Vitamins: 6},
			"grain":     {Calories: 100, Protein: 4, Fiber: 2, Vitamins: 3},
		},
		DailyTargets: map[string]float64{
			"calories": 2000,
			"protein":  50,
			"fiber":    25,
			"vitamins": 70,
		},
		BudgetByRange: map[string]float64{
			"low":    50,
			"medium": 75,
			"high":   100,
		},
	}
}

func (t Tables) CategoryRate(category string) CategoryRate {
	if rate, ok := t.CategoryRates[category]; ok {
		return rate
	}
	return UnknownCategoryRate
}

func (t Tables) WasteRate(category string) float64 {
	if rate, ok := t.WasteRates[category]; ok {
		return rate
	}
	return DefaultWasteRate
}

func (t Tables) CostPerUnit(category string) float64 {
	if cost, ok := t.AvgCostPerUnit[category]; ok {
		return cost
	}
	return DefaultCostPerUnit
}
