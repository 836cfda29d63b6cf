package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/postcal/postcal/internal/service"
	"github.com/postcal/postcal/internal/transfer"
)

type ApiKeyHandler struct {
	s service.ApiKeyService
}

func NewApiKeyHandler(service service.ApiKeyService) *ApiKeyHandler {
	return &ApiKeyHandler{s: service}
}

func (h *ApiKeyHandler) CreateApiKey(c *fiber.Ctx) error {
	var req transfer.ApiKeyCreation
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	key, err := h.s.Create(c.Context(), req.Name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": key})
}

func (h *ApiKeyHandler) ListKeys(c *fiber.Ctx) error {
	keys, err := h.s.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to list api keys",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": keys})
}

func (h *ApiKeyHandler) RemoveAPIKey(c *fiber.Ctx) error {
	keyID := c.QueryInt("id", 0)

	err := h.s.RemoveAPIKey(c.Context(), int64(keyID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to remove api key",
		})
	}

	return c.SendStatus(fiber.StatusOK)
}
