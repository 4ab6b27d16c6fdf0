package handlers

import (
	"strconv"
	"time"

	"foodwise-backend/domain"
	"foodwise-backend/internal/api/presenters"
	"foodwise-backend/pkg/analytics"

	"github.com/gofiber/fiber/v2"
)

type (
	AnalyticsHandler interface {
		GetRiskPredictions(c *fiber.Ctx) error
		GetHighRiskAlerts(c *fiber.Ctx) error
		GetWasteEstimate(c *fiber.Ctx) error
		GetWasteProjection(c *fiber.Ctx) error
		CompareToCommunity(c *fiber.Ctx) error
		GetPatterns(c *fiber.Ctx) error
		GetWeeklyTrends(c *fiber.Ctx) error
		GetSDGScore(c *fiber.Ctx) error
		SaveSDGScore(c *fiber.Ctx) error
		GetSDGHistory(c *fiber.Ctx) error
	}

	analyticsHandler struct {
		analyticsService analytics.AnalyticsService
	}
)

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandler{analyticsService: analyticsService}
}

func (h *analyticsHandler) GetRiskPredictions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	daysAhead, err := strconv.Atoi(c.Query("days_ahead", "7"))
	if err != nil || daysAhead < 1 {
		daysAhead = analytics.DefaultRiskDaysAhead
	}

	predictions, err := h.analyticsService.GetRiskPredictions(c.Context(), userID, daysAhead)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRiskPredictions, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"predictions": predictions,
		"days_ahead":  daysAhead,
	}, fiber.StatusOK, domain.MessageSuccessGetRiskPredictions)
}

func (h *analyticsHandler) GetHighRiskAlerts(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	alerts, err := h.analyticsService.GetHighRiskAlerts(c.Context(), userID, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAlerts, err)
	}

	return presenters.SuccessResponse(c, alerts, fiber.StatusOK, domain.MessageSuccessGetAlerts)
}

func (h *analyticsHandler) GetWasteEstimate(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	period := c.Query("period", domain.PeriodWeek)

	estimate, err := h.analyticsService.GetWasteEstimate(c.Context(), userID, period)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWasteEstimate, err)
	}

	return presenters.SuccessResponse(c, estimate, fiber.StatusOK, domain.MessageSuccessGetWasteEstimate)
}

func (h *analyticsHandler) GetWasteProjection(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	weeks, err := strconv.Atoi(c.Query("weeks", "4"))
	if err != nil || weeks < 1 {
		weeks = 4
	}

	projection, err := h.analyticsService.GetWasteProjection(c.Context(), userID, weeks)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProjection, err)
	}

	return presenters.SuccessResponse(c, projection, fiber.StatusOK, domain.MessageSuccessGetProjection)
}

func (h *analyticsHandler) CompareToCommunity(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	period := c.Query("period", domain.PeriodWeek)

	comparison, err := h.analyticsService.CompareToCommunity(c.Context(), userID, period)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetComparison, err)
	}

	return presenters.SuccessResponse(c, comparison, fiber.StatusOK, domain.MessageSuccessGetComparison)
}

func (h *analyticsHandler) GetPatterns(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	patterns, err := h.analyticsService.GetPatterns(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPatterns, err)
	}

	return presenters.SuccessResponse(c, patterns, fiber.StatusOK, domain.MessageSuccessGetPatterns)
}

func (h *analyticsHandler) GetWeeklyTrends(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	trends, err := h.analyticsService.GetWeeklyTrends(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTrends, err)
	}

	return presenters.SuccessResponse(c, trends, fiber.StatusOK, domain.MessageSuccessGetTrends)
}

func (h *analyticsHandler) GetSDGScore(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	weekStart, err := parseWeekStart(c.Query("week_start"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSDGScore, domain.ErrInvalidWeekStart)
	}

	score, err := h.analyticsService.ComputeSDGScore(c.Context(), userID, weekStart)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSDGScore, err)
	}

	return presenters.SuccessResponse(c, score, fiber.StatusOK, domain.MessageSuccessGetSDGScore)
}

func (h *analyticsHandler) SaveSDGScore(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	weekStart, err := parseWeekStart(c.Query("week_start"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveSDGScore, domain.ErrInvalidWeekStart)
	}

	score, err := h.analyticsService.SaveWeeklyScore(c.Context(), userID, weekStart)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveSDGScore, err)
	}

	return presenters.SuccessResponse(c, score, fiber.StatusOK, domain.MessageSuccessSaveSDGScore)
}

func (h *analyticsHandler) GetSDGHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	limit, err := strconv.Atoi(c.Query("limit", "12"))
	if err != nil || limit < 1 {
		limit = 12
	}

	history, err := h.analyticsService.GetSDGHistory(c.Context(), userID, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSDGHistory, err)
	}

	return presenters.SuccessResponse(c, history, fiber.StatusOK, domain.MessageSuccessGetSDGHistory)
}

func parseWeekStart(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
