package config

import (
	"os"
	"time"

	"foodwise-backend/internal/api/handlers"
	"foodwise-backend/internal/api/routes"
	"foodwise-backend/internal/middleware"
	"foodwise-backend/internal/utils"
	"foodwise-backend/internal/utils/storage"
	"foodwise-backend/pkg/advisor"
	"foodwise-backend/pkg/analytics"
	"foodwise-backend/pkg/catalog"
	"foodwise-backend/pkg/consumption"
	"foodwise-backend/pkg/inventory"
	"foodwise-backend/pkg/jwt"
	"foodwise-backend/pkg/mealplan"
	"foodwise-backend/pkg/scheduler"
	"foodwise-backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, *scheduler.Scheduler, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	tables := analytics.DefaultTables()
	gemini := advisor.NewGeminiClient(
		utils.GetConfig("GEMINI_API_KEY"),
		utils.GetConfig("GEMINI_MODEL"),
	)

	// Repository
	userRepository := user.NewUserRepository(db)
	inventoryRepository := inventory.NewInventoryRepository(db)
	consumptionRepository := consumption.NewConsumptionRepository(db)
	catalogRepository := catalog.NewCatalogRepository(db)
	analyticsRepository := analytics.NewAnalyticsRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	inventoryService := inventory.NewInventoryService(inventoryRepository, tables)
	consumptionService := consumption.NewConsumptionService(consumptionRepository)
	catalogService := catalog.NewCatalogService(catalogRepository)
	advisorService := advisor.NewAdvisorService(
		gemini,
		inventoryRepository,
		consumptionRepository,
		tables,
	)
	analyticsService := analytics.NewAnalyticsService(
		analyticsRepository,
		inventoryRepository,
		consumptionRepository,
		userRepository,
		tables,
		advisorService,
	)
	mealPlanService := mealplan.NewMealPlanService(
		inventoryRepository,
		catalogRepository,
		userRepository,
		gemini,
		tables,
	)

	// Handler
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	consumptionHandler := handlers.NewConsumptionHandler(consumptionService, validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanService, validator)
	advisorHandler := handlers.NewAdvisorHandler(advisorService, validator)

	// routes
	routesConfig := routes.Config{
		App:                app,
		InventoryHandler:   inventoryHandler,
		ConsumptionHandler: consumptionHandler,
		CatalogHandler:     catalogHandler,
		AnalyticsHandler:   analyticsHandler,
		MealPlanHandler:    mealPlanHandler,
		AdvisorHandler:     advisorHandler,
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()

	jobs := scheduler.NewScheduler(
		inventoryService,
		inventoryRepository,
		userRepository,
		analyticsService,
		s3,
	)

	return app, jobs, nil
}
