package seeder

import (
	"fmt"

	"foodwise-backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedFoodCatalog loads the reference catalog of common household foods.
// Existing rows are updated by name so re-running is safe.
func SeedFoodCatalog(db *gorm.DB) error {
	items := []entities.FoodCatalogItem{
		// Fruits
		{Name: "Apple", Category: "fruit", TypicalExpirationDays: 30, SampleCostPerUnit: 0.50, Unit: "piece",
			Description: "Fresh, crisp apples perfect for snacking or cooking.",
			StorageTips: "Store in refrigerator crisper drawer. Keep away from bananas."},
		{Name: "Banana", Category: "fruit", TypicalExpirationDays: 7, SampleCostPerUnit: 0.30, Unit: "piece",
			Description: "Sweet, potassium-rich bananas.",
			StorageTips: "Store at room temperature. Refrigerate when ripe to slow ripening."},
		{Name: "Orange", Category: "fruit", TypicalExpirationDays: 14, SampleCostPerUnit: 0.40, Unit: "piece",
			Description: "Vitamin C rich citrus fruit.",
			StorageTips: "Store at room temperature or in refrigerator."},
		{Name: "Strawberries", Category: "fruit", TypicalExpirationDays: 5, SampleCostPerUnit: 3.50, Unit: "pack",
			Description: "Sweet, juicy strawberries.",
			StorageTips: "Refrigerate immediately. Do not wash until ready to eat."},

		// Vegetables
		{Name: "Carrot", Category: "vegetable", TypicalExpirationDays: 21, SampleCostPerUnit: 1.20, Unit: "bunch",
			Description: "Crunchy, vitamin A rich root vegetable.",
			StorageTips: "Store in refrigerator. Remove green tops before storing."},
		{Name: "Broccoli", Category: "vegetable", TypicalExpirationDays: 7, SampleCostPerUnit: 2.50, Unit: "bunch",
			Description: "Nutritious green vegetable high in vitamins.",
			StorageTips: "Store in refrigerator crisper. Keep dry."},
		{Name: "Tomato", Category: "vegetable", TypicalExpirationDays: 7, SampleCostPerUnit: 2.00, Unit: "kg",
			Description: "Versatile red fruit used as a vegetable.",
			StorageTips: "Store at room temperature until ripe, then refrigerate."},
		{Name: "Lettuce", Category: "vegetable", TypicalExpirationDays: 7, SampleCostPerUnit: 1.80, Unit: "bunch",
			Description: "Crisp leafy green for salads.",
			StorageTips: "Store in refrigerator. Keep dry and wrapped in paper towel."},
		{Name: "Potato", Category: "vegetable", TypicalExpirationDays: 60, SampleCostPerUnit: 1.50, Unit: "kg",
			Description: "Starchy tuber, versatile for cooking.",
			StorageTips: "Store in cool, dark, dry place. Do not refrigerate."},

		// Dairy
		{Name: "Milk", Category: "dairy", TypicalExpirationDays: 7, SampleCostPerUnit: 3.50, Unit: "l",
			Description: "Fresh whole milk.",
			StorageTips: "Always refrigerate. Use within expiration date."},
		{Name: "Eggs", Category: "dairy", TypicalExpirationDays: 30, SampleCostPerUnit: 4.00, Unit: "pack",
			Description: "Fresh chicken eggs.",
			StorageTips: "Store in refrigerator. Keep in original carton."},
		{Name: "Cheese", Category: "dairy", TypicalExpirationDays: 14, SampleCostPerUnit: 5.00, Unit: "pack",
			Description: "Aged cheddar cheese.",
			StorageTips: "Wrap tightly and refrigerate. Keep away from strong odors."},
		{Name: "Yogurt", Category: "dairy", TypicalExpirationDays: 14, SampleCostPerUnit: 2.50, Unit: "pack",
			Description: "Creamy plain yogurt.",
			StorageTips: "Always refrigerate. Check expiration date regularly."},

		// Grains
		{Name: "Bread", Category: "grain", TypicalExpirationDays: 7, SampleCostPerUnit: 2.50, Unit: "piece",
			Description: "Fresh white bread loaf.",
			StorageTips: "Store in cool, dry place. Can be frozen to extend shelf life."},
		{Name: "Rice", Category: "grain", TypicalExpirationDays: 365, SampleCostPerUnit: 4.00, Unit: "kg",
			Description: "Long grain white rice.",
			StorageTips: "Store in airtight container in cool, dry place."},
		{Name: "Pasta", Category: "grain", TypicalExpirationDays: 730, SampleCostPerUnit: 2.00, Unit: "pack",
			Description: "Dried spaghetti pasta.",
			StorageTips: "Store in cool, dry place. Keep in original packaging or airtight container."},

		// Meat
		{Name: "Chicken Breast", Category: "meat", TypicalExpirationDays: 3, SampleCostPerUnit: 8.00, Unit: "kg",
			Description: "Fresh boneless chicken breast.",
			StorageTips: "Refrigerate immediately. Use or freeze within 2 days."},
		{Name: "Ground Beef", Category: "meat", TypicalExpirationDays: 2, SampleCostPerUnit: 7.50, Unit: "kg",
			Description: "Fresh ground beef.",
			StorageTips: "Refrigerate immediately. Use within 1-2 days or freeze."},

		// Beverages
		{Name: "Orange Juice", Category: "beverage", TypicalExpirationDays: 7, SampleCostPerUnit: 3.00, Unit: "l",
			Description: "Fresh squeezed orange juice.",
			StorageTips: "Refrigerate after opening. Consume within 3-5 days."},
		{Name: "Coffee", Category: "beverage", TypicalExpirationDays: 180, SampleCostPerUnit: 12.00, Unit: "pack",
			Description: "Ground coffee beans.",
			StorageTips: "Store in airtight container in cool, dark place."},
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"category", "typical_expiration_days", "sample_cost_per_unit",
			"unit", "description", "storage_tips", "updated_at",
		}),
	}).Create(&items).Error
	if err != nil {
		return err
	}

	fmt.Printf("Seeded %d catalog items\n", len(items))
	return nil
}
