package transfer

// Request bodies for the posts API. Scheduled times travel as
// "2006-01-02T15:04" strings, matching the datetime-local inputs the
// dashboard submits.

type PostCreation struct {
	Caption     string   `json:"caption"`
	Media       []string `json:"media"`
	Platform    string   `json:"platform"`
	Origin      string   `json:"origin"`
	ScheduledAt string   `json:"scheduled_at"`
}

type PostUpdate struct {
	Caption     *string  `json:"caption"`
	Media       []string `json:"media"`
	Status      *string  `json:"status"`
	ScheduledAt string   `json:"scheduled_at"`
}

type ScheduleRequest struct {
	ScheduledAt string `json:"scheduled_at"`
}

type SuggestRequest struct {
	Prompt string `json:"prompt"`
	Mode   string `json:"mode"`
}

type SuggestResult struct {
	Caption  string   `json:"caption,omitempty"`
	ImageURL string   `json:"image_url,omitempty"`
	Hashtags []string `json:"hashtags,omitempty"`
}

type ApiKeyCreation struct {
	Name string `json:"name"`
}
