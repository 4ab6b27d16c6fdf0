package migration

import (
	"fmt"
	"log"

	"foodwise-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.InventoryItem{}); err != nil {
		log.Fatalf("Error migrating inventory item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ConsumptionLog{}); err != nil {
		log.Fatalf("Error migrating consumption log database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodCatalogItem{}); err != nil {
		log.Fatalf("Error migrating food catalog database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RiskPrediction{}); err != nil {
		log.Fatalf("Error migrating risk prediction database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.WasteSnapshot{}); err != nil {
		log.Fatalf("Error migrating waste snapshot database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.SDGImpactScore{}); err != nil {
		log.Fatalf("Error migrating sdg impact score database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
