package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"github.com/postcal/postcal/internal/models"
	"github.com/postcal/postcal/internal/post"
)

func (q *Queue) HandlePublishPostTask(ctx context.Context, task *asynq.Task) error {
	var payload PublishPostPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	return q.PublishPost(ctx, payload.PostID)
}

// PublishPost flips a due scheduled post to posted. The lifecycle guard
// runs again at delivery time: the post may have been deleted,
// rescheduled, reverted to draft or denied since the task was enqueued.
func (q *Queue) PublishPost(ctx context.Context, postID string) error {
	posts, err := q.st.List(ctx)
	if err != nil {
		return err
	}

	var current *models.Post
	for i := range posts {
		if posts[i].ID == postID {
			current = &posts[i]
			break
		}
	}
	if current == nil {
		slog.Info("scheduled post no longer exists, skipping", "post_id", postID)
		return nil
	}

	if current.Status != models.PostStatusScheduled {
		slog.Info("post is no longer scheduled, skipping", "post_id", postID, "status", current.Status)
		return nil
	}

	// A reschedule leaves the old task in the queue. If the scheduled
	// time moved past the delivery time, drop the task; the one enqueued
	// for the new time (or the sweep) publishes the post when it is due.
	if current.ScheduledAt != nil && current.ScheduledAt.After(time.Now()) {
		slog.Info("post is not due yet, skipping", "post_id", postID, "scheduled_at", current.ScheduledAt)
		return nil
	}

	published, err := post.PublishNow(*current)
	if err != nil {
		if post.IsInvalidTransition(err) {
			// Unapproved AI content stays put; the sweep picks it up
			// once it is approved.
			slog.Info("post not eligible for publishing", "post_id", postID, "error", err.Error())
			return nil
		}
		return err
	}

	if _, err := q.st.Save(ctx, published); err != nil {
		slog.Error("error saving published post", "post_id", postID, "error", err.Error())
		return err
	}

	slog.Info("post published", "post_id", postID, "platform", published.Platform)
	return nil
}
