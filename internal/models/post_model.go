package models

import "time"

type Post struct {
	ID          string     `db:"id" json:"id"`
	Caption     string     `db:"caption" json:"caption"`
	Media       []string   `db:"media" json:"media"`
	Platform    string     `db:"platform" json:"platform"`
	Origin      string     `db:"origin" json:"origin"`
	Status      string     `db:"status" json:"status"` // draft, scheduled, posted
	Approval    string     `db:"approval" json:"approval"`
	ScheduledAt *time.Time `db:"scheduled_at" json:"scheduled_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// EffectiveAt is the timestamp used for calendar bucketing: the
// scheduled time when one is set, the creation time otherwise.
func (p Post) EffectiveAt() time.Time {
	if p.ScheduledAt != nil {
		return *p.ScheduledAt
	}
	return p.CreatedAt
}

// Cover returns the preview image for list and grid views.
func (p Post) Cover() string {
	if len(p.Media) == 0 {
		return ""
	}
	return p.Media[0]
}

const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusPosted    = "posted"
)

const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalDenied   = "denied"
)

const (
	OriginManual      = "manual"
	OriginAIGenerated = "ai-generated"
)

var Platforms = map[string]struct{}{
	"instagram": {},
	"facebook":  {},
	"twitter":   {},
	"linkedin":  {},
	"tiktok":    {},
}

func IsValidPlatform(platform string) bool {
	_, ok := Platforms[platform]
	return ok
}
