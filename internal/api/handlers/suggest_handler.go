package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/postcal/postcal/internal/service"
	"github.com/postcal/postcal/internal/transfer"
)

type SuggestHandler struct {
	s service.SuggestService
}

func NewSuggestHandler(service service.SuggestService) *SuggestHandler {
	return &SuggestHandler{s: service}
}

func (h *SuggestHandler) Suggest(c *fiber.Ctx) error {
	var req transfer.SuggestRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	result, err := h.s.Suggest(c.Context(), req.Prompt, req.Mode)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": result})
}
