package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/postcal/postcal/internal/post"
)

// statusForError maps the engine's error taxonomy onto HTTP statuses:
// validation 400, guard rejection 409, missing record 404, gateway
// trouble 502/504, anything else 500.
func statusForError(err error) int {
	switch {
	case post.IsValidation(err):
		return fiber.StatusBadRequest
	case post.IsInvalidTransition(err):
		return fiber.StatusConflict
	case errors.Is(err, post.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, post.ErrGatewayTimeout):
		return fiber.StatusGatewayTimeout
	case errors.Is(err, post.ErrGatewayUnavailable):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func writeError(c *fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
