// Package post holds the scheduling engine: the canonical post record
// rules and the status/approval lifecycle. Everything here is a pure
// transformation; committing results to storage is the caller's job.
package post

import (
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/postcal/postcal/internal/models"
)

type CreateInput struct {
	Caption     string
	Media       []string
	Platform    string
	Origin      string
	ScheduledAt *time.Time
}

type UpdatePatch struct {
	Caption     *string
	Media       []string
	Status      *string
	ScheduledAt *time.Time
}

// Create builds a new post. Drafts may be empty, so neither caption nor
// media is required. AI-originated posts start pending approval; manual
// ones are approved from the start.
func Create(in CreateInput) (models.Post, error) {
	if !models.IsValidPlatform(in.Platform) {
		return models.Post{}, &ValidationError{Field: "platform", Reason: "must be one of instagram, facebook, twitter, linkedin, tiktok"}
	}

	origin := in.Origin
	if origin == "" {
		origin = models.OriginManual
	}
	if origin != models.OriginManual && origin != models.OriginAIGenerated {
		return models.Post{}, &ValidationError{Field: "origin", Reason: "must be manual or ai-generated"}
	}

	id, err := gonanoid.New()
	if err != nil {
		return models.Post{}, err
	}

	approval := models.ApprovalApproved
	if origin == models.OriginAIGenerated {
		approval = models.ApprovalPending
	}

	now := time.Now()
	p := models.Post{
		ID:        id,
		Caption:   in.Caption,
		Media:     append([]string(nil), in.Media...),
		Platform:  in.Platform,
		Origin:    origin,
		Status:    models.PostStatusDraft,
		Approval:  approval,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if in.ScheduledAt != nil {
		return Schedule(p, *in.ScheduledAt)
	}
	return p, nil
}

// Update applies a content patch. Posted posts are immutable; a
// scheduled-time change must come paired with the scheduled status.
// Substantive edits to AI-originated content send it back through
// approval.
func Update(p models.Post, patch UpdatePatch) (models.Post, error) {
	contentChange := false
	if patch.Caption != nil && *patch.Caption != p.Caption {
		contentChange = true
	}
	if patch.Media != nil && !sameMedia(patch.Media, p.Media) {
		contentChange = true
	}

	if contentChange && p.Status == models.PostStatusPosted {
		return p, &ValidationError{Field: "status", Reason: "posted posts cannot be edited"}
	}

	if patch.ScheduledAt != nil && (patch.Status == nil || *patch.Status != models.PostStatusScheduled) {
		return p, &ValidationError{Field: "scheduled_at", Reason: "a scheduled time requires status scheduled"}
	}

	updated := p
	if patch.Caption != nil {
		updated.Caption = *patch.Caption
	}
	if patch.Media != nil {
		updated.Media = append([]string(nil), patch.Media...)
	}

	if contentChange && updated.Origin == models.OriginAIGenerated {
		updated.Approval = models.ApprovalPending
	}

	if patch.Status != nil {
		var err error
		switch *patch.Status {
		case models.PostStatusScheduled:
			if patch.ScheduledAt == nil {
				return p, &ValidationError{Field: "scheduled_at", Reason: "scheduling requires a time"}
			}
			updated, err = Schedule(updated, *patch.ScheduledAt)
		case models.PostStatusDraft:
			if updated.Status != models.PostStatusDraft {
				updated, err = RevertToDraft(updated)
			}
		case models.PostStatusPosted:
			updated, err = PublishNow(updated)
		default:
			return p, &ValidationError{Field: "status", Reason: "must be draft, scheduled or posted"}
		}
		if err != nil {
			return p, err
		}
	}

	updated.UpdatedAt = time.Now()
	return updated, nil
}

func sameMedia(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
