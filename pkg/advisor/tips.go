package advisor

// Intent labels understood by the advisor.
const (
	IntentWasteReduction = "waste_reduction"
	IntentNutrition      = "nutrition"
	IntentMealPlanning   = "meal_planning"
	IntentLeftovers      = "leftovers"
	IntentSharing        = "sharing"
	IntentEnvironment    = "environment"
	IntentGeneral        = "general"
)

var intentKeywords = map[string][]string{
	IntentWasteReduction: {
		"waste", "throw away", "expire", "spoiled", "rotten", "garbage",
		"trash", "discard", "reduce waste", "prevent waste", "save food",
		"expiring", "expiration", "going bad", "spoiling",
	},
	IntentNutrition: {
		"nutrition", "nutrient", "vitamin", "healthy", "diet", "protein",
		"carb", "calorie", "balanced", "health", "wellness", "nutritious",
		"vitamins", "minerals", "dietary", "nutritional",
	},
	IntentMealPlanning: {
		"meal plan", "plan meals", "menu", "shopping list", "weekly meals",
		"meal prep", "planning", "what to cook", "meal ideas", "recipes",
		"cook", "prepare", "budget meals", "cheap meals",
	},
	IntentLeftovers: {
		"leftover", "left over", "left overs", "use up", "transform",
		"repurpose", "reuse", "old food", "yesterday", "remaining",
		"extra food", "surplus food", "leftover recipe",
	},
	IntentSharing: {
		"share", "donate", "surplus", "community", "food bank", "give away",
		"charity", "neighbor", "local sharing", "food sharing", "donation",
		"help others", "share food",
	},
	IntentEnvironment: {
		"environment", "carbon", "sustainable", "impact", "climate",
		"eco", "green", "footprint", "emission", "sustainability",
		"environmental", "planet", "earth",
	},
}

var tipsDatabase = map[string][]string{
	IntentWasteReduction: {
		"Plan meals around items expiring soon - use them first!",
		"Freeze items before they expire - most foods can be frozen",
		"Use the FIFO method: First In, First Out - older items first",
		"Store fruits and vegetables properly - different items need different storage",
		"Turn overripe fruits into smoothies, jams, or baked goods",
		"Use vegetable scraps to make broth or stock",
		"Check your inventory before shopping to avoid duplicates",
		"Compost food scraps instead of throwing them away",
	},
	IntentNutrition: {
		"Aim for a colorful plate - variety ensures diverse nutrients",
		"Include protein, carbs, and healthy fats in each meal",
		"Eat plenty of vegetables - aim for 5 servings daily",
		"Choose whole grains over refined grains when possible",
		"Stay hydrated - drink water throughout the day",
		"Balance your meals - don't skip any food groups",
		"Eat fruits for natural sugars and vitamins",
	},
	IntentMealPlanning: {
		"Check your inventory first - plan meals around what you have",
		"Create a weekly meal plan to save time and money",
		"Make a shopping list based on your meal plan",
		"Prep ingredients in advance for easier cooking",
		"Cook in batches and freeze portions for later",
		"Plan meals that use similar ingredients to reduce waste",
		"Budget-friendly tip: Plan meals around sales and seasonal produce",
	},
	IntentLeftovers: {
		"Transform leftover vegetables into frittatas or omelets",
		"Turn leftover meat into sandwiches, wraps, or salads",
		"Use leftover rice for fried rice or rice pudding",
		"Blend leftover fruits into smoothies or make fruit salad",
		"Make soup or stew from various leftovers",
		"Turn leftover bread into croutons or bread pudding",
		"Freeze leftovers in portion sizes for future meals",
	},
	IntentSharing: {
		"Check local food sharing apps like Olio, Too Good To Go",
		"Connect with neighbors through community groups or apps",
		"Donate to local food banks or shelters",
		"Organize a food swap with friends or neighbors",
		"Check if your area has community fridges or food pantries",
		"Share surplus garden produce with neighbors",
	},
	IntentEnvironment: {
		"Reducing food waste is the #1 way to reduce your food carbon footprint",
		"Choose local and seasonal produce to reduce transportation emissions",
		"Reduce meat consumption - plant-based meals have lower environmental impact",
		"Compost food scraps to reduce methane emissions from landfills",
		"Buy in bulk to reduce packaging waste",
		"Every meal saved from waste reduces greenhouse gas emissions",
	},
}
