package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/postcal/postcal/internal/service"
)

type MediaHandler struct {
	s service.MediaService
}

func NewMediaHandler(service service.MediaService) *MediaHandler {
	return &MediaHandler{s: service}
}

func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse form",
		})
	}

	files := form.File["files"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No files selected",
		})
	}

	assets, err := h.s.Upload(c.Context(), files)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    assets,
		"message": "Files uploaded successfully",
	})
}

func (h *MediaHandler) List(c *fiber.Ctx) error {
	assets, err := h.s.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to list media assets",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":  assets,
		"count": len(assets),
	})
}
