package calendar

import (
	"testing"
	"time"

	"github.com/postcal/postcal/internal/models"
)

func statusFixture() []models.Post {
	now := time.Now()
	return []models.Post{
		makePost("s1", now, at(2026, 2, 1, 9, 0), models.PostStatusScheduled),
		makePost("d1", now, nil, models.PostStatusDraft),
		makePost("s2", now, at(2026, 2, 2, 9, 0), models.PostStatusScheduled),
		makePost("d2", now, nil, models.PostStatusDraft),
		makePost("s3", now, at(2026, 2, 3, 9, 0), models.PostStatusScheduled),
	}
}

func TestByStatusPreservesOrder(t *testing.T) {
	scheduled := ByStatus(statusFixture(), models.PostStatusScheduled)
	if len(scheduled) != 3 {
		t.Fatalf("expected 3 scheduled posts, got %d", len(scheduled))
	}

	want := []string{"s1", "s2", "s3"}
	for i, p := range scheduled {
		if p.ID != want[i] {
			t.Errorf("position %d: got %s, want %s", i, p.ID, want[i])
		}
		if p.Status != models.PostStatusScheduled {
			t.Errorf("post %s has status %s", p.ID, p.Status)
		}
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	posts := []models.Post{
		{ID: "1", Caption: "Excited to share our new Product line!"},
		{ID: "2", Caption: "Behind the scenes at our office"},
		{ID: "3", Caption: "product updates coming soon"},
	}

	got := Search(posts, "PRODUCT")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "3" {
		t.Error("search must preserve relative order")
	}
}

func TestSearchEmptyTermReturnsAll(t *testing.T) {
	posts := statusFixture()
	got := Search(posts, "")
	if len(got) != len(posts) {
		t.Fatalf("empty term should return all %d posts, got %d", len(posts), len(got))
	}
}

func TestCountByStatus(t *testing.T) {
	posts := append(statusFixture(), makePost("p1", time.Now(), nil, models.PostStatusPosted))

	counts := CountByStatus(posts)
	if counts.Total != 6 {
		t.Errorf("total = %d, want 6", counts.Total)
	}
	if counts.Scheduled != 3 {
		t.Errorf("scheduled = %d, want 3", counts.Scheduled)
	}
	if counts.Draft != 2 {
		t.Errorf("draft = %d, want 2", counts.Draft)
	}
	if counts.Posted != 1 {
		t.Errorf("posted = %d, want 1", counts.Posted)
	}
}
