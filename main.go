package main

import (
	"log"

	"foodwise-backend/cmd/config"
	migration "foodwise-backend/cmd/database/migrate"
	"foodwise-backend/cmd/database/seeder"
	"foodwise-backend/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed connecting to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed migrating database: %v", err)
	}
	if err := seeder.SeedFoodCatalog(db); err != nil {
		log.Fatalf("failed seeding food catalog: %v", err)
	}

	app, jobs, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed setting up app: %v", err)
	}

	if err := jobs.Start(); err != nil {
		log.Fatalf("failed starting scheduled jobs: %v", err)
	}
	defer jobs.Stop()

	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("failed starting server: %v", err)
	}
}
