package handlers

import (
	"foodwise-backend/domain"
	"foodwise-backend/internal/api/presenters"
	"foodwise-backend/pkg/advisor"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AdvisorHandler interface {
		Ask(c *fiber.Ctx) error
	}

	advisorHandler struct {
		advisorService advisor.AdvisorService
		validator      *validator.Validate
	}
)

func NewAdvisorHandler(advisorService advisor.AdvisorService, validator *validator.Validate) AdvisorHandler {
	return &advisorHandler{
		advisorService: advisorService,
		validator:      validator,
	}
}

func (h *advisorHandler) Ask(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AskAdvisorRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAdvisorReply, err)
	}

	res, err := h.advisorService.Ask(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAdvisorReply, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAdvisorReply)
}
