package post

import (
	"testing"
	"time"

	"github.com/postcal/postcal/internal/models"
)

func TestScheduleRevertRoundTrip(t *testing.T) {
	p := mustCreate(t, CreateInput{Caption: "roundtrip", Platform: "instagram"})

	at := time.Date(2026, 1, 25, 14, 0, 0, 0, time.Local)
	for i := 0; i < 3; i++ {
		scheduled, err := Schedule(p, at)
		if err != nil {
			t.Fatalf("Schedule failed: %v", err)
		}
		if scheduled.Status != models.PostStatusScheduled || scheduled.ScheduledAt == nil {
			t.Fatal("scheduled post must carry a scheduled time")
		}

		p, err = RevertToDraft(scheduled)
		if err != nil {
			t.Fatalf("RevertToDraft failed: %v", err)
		}
		if p.Status != models.PostStatusDraft || p.ScheduledAt != nil {
			t.Fatal("draft post must not carry a scheduled time")
		}
	}
}

func TestManualScheduleThenPublish(t *testing.T) {
	p := mustCreate(t, CreateInput{Caption: "Hello", Platform: "instagram", Origin: models.OriginManual})
	if p.Status != models.PostStatusDraft || p.Approval != models.ApprovalApproved {
		t.Fatalf("unexpected initial state: %s/%s", p.Status, p.Approval)
	}

	at := time.Date(2026, 1, 25, 14, 0, 0, 0, time.Local)
	p, err := Schedule(p, at)
	if err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}
	if p.Status != models.PostStatusScheduled || !p.ScheduledAt.Equal(at) {
		t.Fatalf("unexpected state after schedule: %s at %v", p.Status, p.ScheduledAt)
	}

	p, err = PublishNow(p)
	if err != nil {
		t.Fatalf("PublishNow failed: %v", err)
	}
	if p.Status != models.PostStatusPosted {
		t.Errorf("expected posted, got %s", p.Status)
	}
	if p.ScheduledAt != nil {
		t.Error("posted posts must not carry a scheduled time")
	}
}

func TestPublishPendingRejected(t *testing.T) {
	p := mustCreate(t, CreateInput{Caption: "AI draft", Platform: "twitter", Origin: models.OriginAIGenerated})

	published, err := PublishNow(p)
	if !IsInvalidTransition(err) {
		t.Fatalf("expected a transition error, got %v", err)
	}
	if published.Status != p.Status || published.Approval != p.Approval {
		t.Error("a rejected transition must leave the post unchanged")
	}

	// Same guard from scheduled.
	p, err = Schedule(p, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}
	published, err = PublishNow(p)
	if !IsInvalidTransition(err) {
		t.Fatalf("expected a transition error, got %v", err)
	}
	if published.Status != models.PostStatusScheduled {
		t.Error("a rejected transition must leave the post unchanged")
	}
}

func TestPublishDeniedRejected(t *testing.T) {
	p := mustCreate(t, CreateInput{Caption: "AI draft", Platform: "twitter", Origin: models.OriginAIGenerated})
	p, err := Deny(p)
	if err != nil {
		t.Fatalf("Deny failed: %v", err)
	}

	if _, err := PublishNow(p); !IsInvalidTransition(err) {
		t.Fatalf("denied content must not publish, got %v", err)
	}
}

func TestApproveThenPublish(t *testing.T) {
	p := mustCreate(t, CreateInput{Caption: "AI draft", Platform: "twitter", Origin: models.OriginAIGenerated})
	p, err := Approve(p)
	if err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	p, err = PublishNow(p)
	if err != nil {
		t.Fatalf("PublishNow after approval failed: %v", err)
	}
	if p.Status != models.PostStatusPosted {
		t.Errorf("expected posted, got %s", p.Status)
	}
}

func TestPostedIsTerminal(t *testing.T) {
	p := mustCreate(t, CreateInput{Caption: "done", Platform: "linkedin"})
	p, err := PublishNow(p)
	if err != nil {
		t.Fatalf("PublishNow failed: %v", err)
	}

	if _, err := Schedule(p, time.Now()); !IsInvalidTransition(err) {
		t.Errorf("schedule on a posted post should fail, got %v", err)
	}
	if _, err := RevertToDraft(p); !IsInvalidTransition(err) {
		t.Errorf("revert on a posted post should fail, got %v", err)
	}
	if _, err := PublishNow(p); !IsInvalidTransition(err) {
		t.Errorf("publish on a posted post should fail, got %v", err)
	}
}

func TestApproveDenyOnlyFromPending(t *testing.T) {
	p := mustCreate(t, CreateInput{Caption: "manual", Platform: "facebook"})

	if _, err := Approve(p); !IsInvalidTransition(err) {
		t.Errorf("approve on already-approved content should fail, got %v", err)
	}
	if _, err := Deny(p); !IsInvalidTransition(err) {
		t.Errorf("deny on already-approved content should fail, got %v", err)
	}
}

func TestSchedulePastTimeAllowed(t *testing.T) {
	p := mustCreate(t, CreateInput{Caption: "late", Platform: "tiktok"})

	past := time.Now().Add(-24 * time.Hour)
	scheduled, err := Schedule(p, past)
	if err != nil {
		t.Fatalf("scheduling in the past should be allowed: %v", err)
	}
	if !scheduled.ScheduledAt.Equal(past) {
		t.Error("past scheduled time should be kept as given")
	}
}
