package post

import (
	"testing"
	"time"

	"github.com/postcal/postcal/internal/models"
)

func TestCreateManualPost(t *testing.T) {
	p, err := Create(CreateInput{
		Caption:  "Hello",
		Platform: "instagram",
		Origin:   models.OriginManual,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if p.ID == "" {
		t.Error("expected an assigned ID")
	}
	if p.Status != models.PostStatusDraft {
		t.Errorf("expected draft status, got %s", p.Status)
	}
	if p.Approval != models.ApprovalApproved {
		t.Errorf("manual posts should be approved immediately, got %s", p.Approval)
	}
	if p.ScheduledAt != nil {
		t.Error("a draft should have no scheduled time")
	}
}

func TestCreateAIPostStartsPending(t *testing.T) {
	p, err := Create(CreateInput{
		Caption:  "Generated caption",
		Platform: "facebook",
		Origin:   models.OriginAIGenerated,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if p.Approval != models.ApprovalPending {
		t.Errorf("AI posts should start pending, got %s", p.Approval)
	}
}

func TestCreateEmptyDraftAllowed(t *testing.T) {
	p, err := Create(CreateInput{Platform: "twitter"})
	if err != nil {
		t.Fatalf("empty drafts should be allowed: %v", err)
	}
	if p.Caption != "" || len(p.Media) != 0 {
		t.Error("expected an empty draft")
	}
}

func TestCreateInvalidPlatform(t *testing.T) {
	_, err := Create(CreateInput{Caption: "x", Platform: "myspace"})
	if !IsValidation(err) {
		t.Fatalf("expected a validation error, got %v", err)
	}
}

func TestCreateInvalidOrigin(t *testing.T) {
	_, err := Create(CreateInput{Platform: "instagram", Origin: "robot"})
	if !IsValidation(err) {
		t.Fatalf("expected a validation error, got %v", err)
	}
}

func TestCreateDirectlyScheduled(t *testing.T) {
	at := time.Date(2026, 1, 25, 14, 0, 0, 0, time.Local)
	p, err := Create(CreateInput{
		Caption:     "Launch day",
		Platform:    "linkedin",
		ScheduledAt: &at,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if p.Status != models.PostStatusScheduled {
		t.Errorf("expected scheduled status, got %s", p.Status)
	}
	if p.ScheduledAt == nil || !p.ScheduledAt.Equal(at) {
		t.Errorf("expected scheduled time %v, got %v", at, p.ScheduledAt)
	}
}

func TestCreateMediaOrderPreserved(t *testing.T) {
	media := []string{"cover.jpg", "second.jpg", "third.jpg"}
	p, err := Create(CreateInput{Platform: "instagram", Media: media})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if p.Cover() != "cover.jpg" {
		t.Errorf("expected first media entry as cover, got %q", p.Cover())
	}
	for i, m := range media {
		if p.Media[i] != m {
			t.Errorf("media order changed at %d: got %q", i, p.Media[i])
		}
	}
}

func TestUpdatePostedPostRejected(t *testing.T) {
	p := mustCreate(t, CreateInput{Caption: "done", Platform: "instagram"})
	p, err := PublishNow(p)
	if err != nil {
		t.Fatalf("PublishNow failed: %v", err)
	}

	caption := "rewrite history"
	_, err = Update(p, UpdatePatch{Caption: &caption})
	if !IsValidation(err) {
		t.Fatalf("expected validation error editing a posted post, got %v", err)
	}
}

func TestUpdateScheduledAtRequiresScheduledStatus(t *testing.T) {
	p := mustCreate(t, CreateInput{Caption: "soon", Platform: "instagram"})

	at := time.Now().Add(time.Hour)
	_, err := Update(p, UpdatePatch{ScheduledAt: &at})
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	status := models.PostStatusScheduled
	updated, err := Update(p, UpdatePatch{ScheduledAt: &at, Status: &status})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Status != models.PostStatusScheduled || updated.ScheduledAt == nil {
		t.Error("expected post to be scheduled with a time")
	}
}

func TestUpdateAIEditResetsApproval(t *testing.T) {
	p := mustCreate(t, CreateInput{Caption: "generated", Platform: "instagram", Origin: models.OriginAIGenerated})
	p, err := Approve(p)
	if err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	caption := "generated, but tweaked"
	updated, err := Update(p, UpdatePatch{Caption: &caption})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Approval != models.ApprovalPending {
		t.Errorf("a substantive edit should return AI content to pending, got %s", updated.Approval)
	}
}

func TestUpdateSameCaptionKeepsApproval(t *testing.T) {
	p := mustCreate(t, CreateInput{Caption: "generated", Platform: "instagram", Origin: models.OriginAIGenerated})
	p, err := Approve(p)
	if err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	caption := p.Caption
	updated, err := Update(p, UpdatePatch{Caption: &caption})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Approval != models.ApprovalApproved {
		t.Errorf("a no-op edit should not reset approval, got %s", updated.Approval)
	}
}

func TestUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		p := mustCreate(t, CreateInput{Platform: "twitter"})
		if seen[p.ID] {
			t.Fatalf("duplicate ID %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func mustCreate(t *testing.T, in CreateInput) models.Post {
	t.Helper()
	p, err := Create(in)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return p
}
