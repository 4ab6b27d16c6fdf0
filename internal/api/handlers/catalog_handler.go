package handlers

import (
	"foodwise-backend/domain"
	"foodwise-backend/internal/api/presenters"
	"foodwise-backend/pkg/catalog"

	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		GetItems(c *fiber.Ctx) error
		Search(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService) CatalogHandler {
	return &catalogHandler{catalogService: catalogService}
}

func (h *catalogHandler) GetItems(c *fiber.Ctx) error {
	category := c.Query("category")

	items, err := h.catalogService.GetItems(c.Context(), category)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCatalog, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetCatalog)
}

func (h *catalogHandler) Search(c *fiber.Ctx) error {
	prefix := c.Query("prefix")

	items, err := h.catalogService.Search(c.Context(), prefix)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCatalog, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetCatalog)
}
