package store

import (
	"context"
	"testing"
	"time"

	"github.com/postcal/postcal/internal/models"
)

func TestMemoryStoreSaveAndList(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		_, err := s.Save(ctx, models.Post{ID: id, Status: models.PostStatusDraft, CreatedAt: time.Now()})
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	posts, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	for i, id := range []string{"a", "b", "c"} {
		if posts[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, posts[i].ID, id)
		}
	}
}

func TestMemoryStoreSaveReplaces(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.Save(ctx, models.Post{ID: "a", Caption: "before"})
	s.Save(ctx, models.Post{ID: "a", Caption: "after"})

	posts, _ := s.List(ctx)
	if len(posts) != 1 {
		t.Fatalf("replace by ID should not duplicate, got %d posts", len(posts))
	}
	if posts[0].Caption != "after" {
		t.Errorf("expected replaced caption, got %q", posts[0].Caption)
	}
}

func TestMemoryStoreRemoveMissingIsNoop(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Remove(ctx, "ghost"); err != nil {
		t.Fatalf("removing a missing ID should be a no-op, got %v", err)
	}

	s.Save(ctx, models.Post{ID: "a"})
	if err := s.Remove(ctx, "a"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := s.Remove(ctx, "a"); err != nil {
		t.Fatalf("double delete should be a no-op, got %v", err)
	}

	posts, _ := s.List(ctx)
	if len(posts) != 0 {
		t.Fatalf("expected empty store, got %d posts", len(posts))
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.Save(ctx, models.Post{ID: "a", Media: []string{"one.jpg"}})

	posts, _ := s.List(ctx)
	posts[0].Media[0] = "mutated.jpg"

	again, _ := s.List(ctx)
	if again[0].Media[0] != "one.jpg" {
		t.Error("listed posts must not share backing arrays with the store")
	}
}
