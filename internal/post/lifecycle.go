package post

import (
	"time"

	"github.com/postcal/postcal/internal/models"
)

// Lifecycle transitions. Each returns the updated post on success and
// the original post plus a *TransitionError when a guard rejects the
// move. Posted is terminal.

// Schedule moves a draft to scheduled, or reschedules an already
// scheduled post. Past times are allowed; the queue clamps the delay.
func Schedule(p models.Post, at time.Time) (models.Post, error) {
	if p.Status == models.PostStatusPosted {
		return p, &TransitionError{From: p.Status, Event: "schedule", Reason: "posted is terminal"}
	}
	if at.IsZero() {
		return p, &ValidationError{Field: "scheduled_at", Reason: "scheduling requires a time"}
	}

	t := at
	p.Status = models.PostStatusScheduled
	p.ScheduledAt = &t
	p.UpdatedAt = time.Now()
	return p, nil
}

// RevertToDraft clears the scheduled time and returns the post to draft.
func RevertToDraft(p models.Post) (models.Post, error) {
	if p.Status != models.PostStatusScheduled {
		return p, &TransitionError{From: p.Status, Event: "revert to draft", Reason: "only scheduled posts can be reverted"}
	}

	p.Status = models.PostStatusDraft
	p.ScheduledAt = nil
	p.UpdatedAt = time.Now()
	return p, nil
}

// PublishNow marks a draft or scheduled post as posted. Approval gates
// the edge: pending content has not been reviewed and denied content
// must be edited and re-approved first.
func PublishNow(p models.Post) (models.Post, error) {
	if p.Status == models.PostStatusPosted {
		return p, &TransitionError{From: p.Status, Event: "publish", Reason: "already posted"}
	}
	if p.Approval == models.ApprovalPending {
		return p, &TransitionError{From: p.Status, Event: "publish", Reason: "content is pending approval"}
	}
	if p.Approval == models.ApprovalDenied {
		return p, &TransitionError{From: p.Status, Event: "publish", Reason: "content was denied"}
	}

	p.Status = models.PostStatusPosted
	p.ScheduledAt = nil
	p.UpdatedAt = time.Now()
	return p, nil
}

// Approve accepts pending AI content.
func Approve(p models.Post) (models.Post, error) {
	if p.Approval != models.ApprovalPending {
		return p, &TransitionError{From: p.Approval, Event: "approve", Reason: "only pending content can be approved"}
	}

	p.Approval = models.ApprovalApproved
	p.UpdatedAt = time.Now()
	return p, nil
}

// Deny rejects pending AI content. The post stays editable; an edit
// returns it to pending for another review.
func Deny(p models.Post) (models.Post, error) {
	if p.Approval != models.ApprovalPending {
		return p, &TransitionError{From: p.Approval, Event: "deny", Reason: "only pending content can be denied"}
	}

	p.Approval = models.ApprovalDenied
	p.UpdatedAt = time.Now()
	return p, nil
}
