package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/postcal/postcal/internal/models"
	"github.com/postcal/postcal/internal/queue"
	"github.com/postcal/postcal/internal/service"
	"github.com/postcal/postcal/internal/transfer"
)

type PostHandler struct {
	s           service.PostService
	AsynqClient *asynq.Client
}

func NewPostHandler(service service.PostService, asynqClient *asynq.Client) *PostHandler {
	return &PostHandler{s: service, AsynqClient: asynqClient}
}

func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	var pc transfer.PostCreation
	if err := c.BodyParser(&pc); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	created, delay, err := h.s.Create(c.Context(), &pc)
	if err != nil {
		return writeError(c, err)
	}

	if created.Status == models.PostStatusScheduled {
		err = queue.EnqueuePost(h.AsynqClient, queue.PublishPostPayload{PostID: created.ID}, delay)
		if err != nil {
			slog.Error("error enqueueing post", "post_id", created.ID, "error", err.Error())
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    created,
		"message": "Post created successfully",
	})
}

func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	status := c.Query("status")
	term := c.Query("q")

	posts, err := h.s.List(c.Context(), status, term)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":  posts,
		"count": len(posts),
	})
}

func (h *PostHandler) GetPost(c *fiber.Ctx) error {
	p, err := h.s.Get(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": p})
}

func (h *PostHandler) UpdatePost(c *fiber.Ctx) error {
	var patch transfer.PostUpdate
	if err := c.BodyParser(&patch); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	updated, err := h.s.Update(c.Context(), c.Params("id"), &patch)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    updated,
		"message": "Post updated successfully",
	})
}

func (h *PostHandler) RemovePost(c *fiber.Ctx) error {
	err := h.s.Remove(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post deleted successfully",
	})
}

func (h *PostHandler) SchedulePost(c *fiber.Ctx) error {
	var req transfer.ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	scheduled, delay, err := h.s.Schedule(c.Context(), c.Params("id"), req.ScheduledAt)
	if err != nil {
		return writeError(c, err)
	}

	err = queue.EnqueuePost(h.AsynqClient, queue.PublishPostPayload{PostID: scheduled.ID}, delay)
	if err != nil {
		slog.Error("error enqueueing post", "post_id", scheduled.ID, "error", err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    scheduled,
		"message": "Post scheduled successfully",
	})
}

func (h *PostHandler) RevertToDraft(c *fiber.Ctx) error {
	reverted, err := h.s.RevertToDraft(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    reverted,
		"message": "Post converted to draft",
	})
}

func (h *PostHandler) PublishPost(c *fiber.Ctx) error {
	published, err := h.s.PublishNow(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    published,
		"message": "Post published",
	})
}

func (h *PostHandler) ApprovePost(c *fiber.Ctx) error {
	approved, err := h.s.Approve(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    approved,
		"message": "Post approved",
	})
}

func (h *PostHandler) DenyPost(c *fiber.Ctx) error {
	denied, err := h.s.Deny(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    denied,
		"message": "Post denied",
	})
}

func (h *PostHandler) GetCounts(c *fiber.Ctx) error {
	counts, err := h.s.Counts(c.Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": counts})
}
