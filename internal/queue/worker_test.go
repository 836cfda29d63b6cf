package queue

import (
	"context"
	"testing"
	"time"

	"github.com/postcal/postcal/internal/models"
	"github.com/postcal/postcal/internal/store"
)

func seedPost(t *testing.T, st store.Store, p models.Post) models.Post {
	t.Helper()
	saved, err := st.Save(context.Background(), p)
	if err != nil {
		t.Fatalf("seeding post failed: %v", err)
	}
	return saved
}

func storedPost(t *testing.T, st store.Store, id string) models.Post {
	t.Helper()
	posts, err := st.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for _, p := range posts {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("post %s not found in store", id)
	return models.Post{}
}

func TestPublishPostPublishesDuePost(t *testing.T) {
	st := store.NewMemoryStore()
	q := NewQueue(st)

	due := time.Now().Add(-time.Minute)
	seedPost(t, st, models.Post{
		ID:          "p1",
		Caption:     "launch",
		Platform:    "instagram",
		Origin:      models.OriginManual,
		Status:      models.PostStatusScheduled,
		Approval:    models.ApprovalApproved,
		ScheduledAt: &due,
	})

	if err := q.PublishPost(context.Background(), "p1"); err != nil {
		t.Fatalf("PublishPost failed: %v", err)
	}

	got := storedPost(t, st, "p1")
	if got.Status != models.PostStatusPosted {
		t.Errorf("status = %s, want posted", got.Status)
	}
	if got.ScheduledAt != nil {
		t.Error("scheduled time should be cleared on publish")
	}
}

func TestPublishPostSkipsRescheduledPost(t *testing.T) {
	st := store.NewMemoryStore()
	q := NewQueue(st)

	// The post was moved to tomorrow after the original task was
	// enqueued; the stale delivery must not publish it early.
	tomorrow := time.Now().Add(24 * time.Hour)
	seedPost(t, st, models.Post{
		ID:          "p1",
		Caption:     "launch",
		Platform:    "instagram",
		Origin:      models.OriginManual,
		Status:      models.PostStatusScheduled,
		Approval:    models.ApprovalApproved,
		ScheduledAt: &tomorrow,
	})

	if err := q.PublishPost(context.Background(), "p1"); err != nil {
		t.Fatalf("PublishPost failed: %v", err)
	}

	got := storedPost(t, st, "p1")
	if got.Status != models.PostStatusScheduled {
		t.Errorf("status = %s, want scheduled", got.Status)
	}
	if got.ScheduledAt == nil || !got.ScheduledAt.Equal(tomorrow) {
		t.Errorf("scheduled time changed, got %v", got.ScheduledAt)
	}
}

func TestPublishPostSkipsMissingPost(t *testing.T) {
	q := NewQueue(store.NewMemoryStore())

	if err := q.PublishPost(context.Background(), "ghost"); err != nil {
		t.Fatalf("deleted posts should be skipped, got %v", err)
	}
}

func TestPublishPostSkipsUnapprovedPost(t *testing.T) {
	st := store.NewMemoryStore()
	q := NewQueue(st)

	due := time.Now().Add(-time.Minute)
	seedPost(t, st, models.Post{
		ID:          "p1",
		Caption:     "generated",
		Platform:    "instagram",
		Origin:      models.OriginAIGenerated,
		Status:      models.PostStatusScheduled,
		Approval:    models.ApprovalPending,
		ScheduledAt: &due,
	})

	if err := q.PublishPost(context.Background(), "p1"); err != nil {
		t.Fatalf("pending posts should be skipped, got %v", err)
	}

	if got := storedPost(t, st, "p1"); got.Status != models.PostStatusScheduled {
		t.Errorf("status = %s, want scheduled", got.Status)
	}
}
