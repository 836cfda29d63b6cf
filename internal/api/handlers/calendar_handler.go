package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/postcal/postcal/internal/service"
)

type CalendarHandler struct {
	s service.PostService
}

func NewCalendarHandler(service service.PostService) *CalendarHandler {
	return &CalendarHandler{s: service}
}

// GetMonth serves the month grid: 7 columns, nil cells padding the
// first day to its weekday, each real cell carrying that day's posts
// ordered by effective time.
func (h *CalendarHandler) GetMonth(c *fiber.Ctx) error {
	year, err := c.ParamsInt("year")
	if err != nil || year < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid year",
		})
	}

	month, err := c.ParamsInt("month")
	if err != nil || month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid month",
		})
	}

	grid, err := h.s.MonthGrid(c.Context(), year, time.Month(month))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"year":  year,
		"month": month,
		"cells": grid,
	})
}
