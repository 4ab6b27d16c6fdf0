package routes

import (
	"foodwise-backend/internal/api/handlers"
	"foodwise-backend/internal/middleware"
	"foodwise-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	InventoryHandler   handlers.InventoryHandler
	ConsumptionHandler handlers.ConsumptionHandler
	CatalogHandler     handlers.CatalogHandler
	AnalyticsHandler   handlers.AnalyticsHandler
	MealPlanHandler    handlers.MealPlanHandler
	AdvisorHandler     handlers.AdvisorHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Inventory()
	c.Consumption()
	c.Catalog()
	c.Analytics()
	c.MealPlan()
	c.Advisor()
	c.GuestRoute()
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/api/v1/inventory", c.Middleware.AuthMiddleware(c.JWTService))
	inventory.Get("/dashboard", c.InventoryHandler.GetDashboardStats)
	inventory.Post("/refresh-status", c.InventoryHandler.RefreshStatuses)

	inventory.Post("", c.InventoryHandler.AddItem)
	inventory.Get("", c.InventoryHandler.GetItems)
	inventory.Get("/:id", c.InventoryHandler.GetItemDetails)
	inventory.Put("/:id", c.InventoryHandler.UpdateItem)
	inventory.Delete("/:id", c.InventoryHandler.DeleteItem)
	inventory.Post("/:id/consume", c.InventoryHandler.ConsumeItem)
}

func (c *Config) Consumption() {
	consumption := c.App.Group("/api/v1/consumption", c.Middleware.AuthMiddleware(c.JWTService))
	consumption.Post("", c.ConsumptionHandler.AddLog)
	consumption.Get("", c.ConsumptionHandler.GetLogs)
	consumption.Delete("/:id", c.ConsumptionHandler.DeleteLog)
}

func (c *Config) Catalog() {
	catalog := c.App.Group("/api/v1/catalog", c.Middleware.AuthMiddleware(c.JWTService))
	catalog.Get("", c.CatalogHandler.GetItems)
	catalog.Get("/search", c.CatalogHandler.Search)
}

func (c *Config) Analytics() {
	analytics := c.App.Group("/api/v1/analytics", c.Middleware.AuthMiddleware(c.JWTService))
	analytics.Get("/risks", c.AnalyticsHandler.GetRiskPredictions)
	analytics.Get("/alerts", c.AnalyticsHandler.GetHighRiskAlerts)
	analytics.Get("/waste", c.AnalyticsHandler.GetWasteEstimate)
	analytics.Get("/waste/projection", c.AnalyticsHandler.GetWasteProjection)
	analytics.Get("/waste/community", c.AnalyticsHandler.CompareToCommunity)
	analytics.Get("/patterns", c.AnalyticsHandler.GetPatterns)
	analytics.Get("/trends", c.AnalyticsHandler.GetWeeklyTrends)
	analytics.Get("/sdg", c.AnalyticsHandler.GetSDGScore)
	analytics.Post("/sdg/save", c.AnalyticsHandler.SaveSDGScore)
	analytics.Get("/sdg/history", c.AnalyticsHandler.GetSDGHistory)
}

func (c *Config) MealPlan() {
	mealplan := c.App.Group("/api/v1/mealplan", c.Middleware.AuthMiddleware(c.JWTService))
	mealplan.Post("/optimize", c.MealPlanHandler.Optimize)
}

func (c *Config) Advisor() {
	advisor := c.App.Group("/api/v1/advisor", c.Middleware.AuthMiddleware(c.JWTService))
	advisor.Post("/ask", c.AdvisorHandler.Ask)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
