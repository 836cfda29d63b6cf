package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/postcal/postcal/internal/post"
	"github.com/postcal/postcal/internal/service"
)

// BusinessHandler mirrors the table-CRUD backend's response shapes for
// the businesses resource, so existing dashboard callers keep working
// unchanged.
type BusinessHandler struct {
	s service.BusinessService
}

func NewBusinessHandler(service service.BusinessService) *BusinessHandler {
	return &BusinessHandler{s: service}
}

func (h *BusinessHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	offset := c.QueryInt("offset", 0)

	businesses, err := h.s.List(c.Context(), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Database error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":  businesses,
		"count": len(businesses),
	})
}

func (h *BusinessHandler) Create(c *fiber.Ctx) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil || body.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name is required",
		})
	}

	business, err := h.s.Create(c.Context(), body.Name)
	if err != nil {
		if post.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Database error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    business,
		"message": "Business created successfully",
	})
}

func (h *BusinessHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	business, err := h.s.Get(c.Context(), int64(id))
	if err != nil {
		if errors.Is(err, post.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Business not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Database error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": business})
}

func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	business, err := h.s.Update(c.Context(), int64(id), body.Name)
	if err != nil {
		if errors.Is(err, post.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Business not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Database error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    business,
		"message": "Business updated successfully",
	})
}

func (h *BusinessHandler) Remove(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	if err := h.s.Remove(c.Context(), int64(id)); err != nil {
		if errors.Is(err, post.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Business not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Database error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Business deleted successfully",
	})
}
