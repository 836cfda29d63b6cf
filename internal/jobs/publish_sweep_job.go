package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/postcal/postcal/internal/models"
	"github.com/postcal/postcal/internal/post"
	"github.com/postcal/postcal/internal/store"
)

// PublishSweepJob publishes overdue approved posts whose queue task was
// lost (Redis flush, restart while a task was due). The queue handles
// the normal path; this is the safety net.
type PublishSweepJob struct {
	st store.Store
}

func NewPublishSweepJob(st store.Store) *PublishSweepJob {
	return &PublishSweepJob{st: st}
}

func (j *PublishSweepJob) SweepOverduePosts() {
	ctx := context.Background()

	posts, err := j.st.List(ctx)
	if err != nil {
		slog.Info(err.Error())
		return
	}

	now := time.Now()
	for _, p := range posts {
		if p.Status != models.PostStatusScheduled || p.ScheduledAt == nil {
			continue
		}
		if p.ScheduledAt.After(now) {
			continue
		}

		published, err := post.PublishNow(p)
		if err != nil {
			// Pending or denied approval; leave it for review.
			continue
		}

		if _, err := j.st.Save(ctx, published); err != nil {
			slog.Info("error saving swept post", "post_id", p.ID, "error", err.Error())
			continue
		}
		slog.Info("overdue post published by sweep", "post_id", p.ID)
	}
}
