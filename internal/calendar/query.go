package calendar

import (
	"strings"

	"github.com/postcal/postcal/internal/models"
)

// ByStatus filters posts to one status, keeping relative order.
func ByStatus(posts []models.Post, status string) []models.Post {
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

// Search does a case-insensitive substring match over captions. An
// empty term returns the collection unfiltered.
func Search(posts []models.Post, term string) []models.Post {
	if term == "" {
		return append([]models.Post(nil), posts...)
	}

	needle := strings.ToLower(term)
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Caption), needle) {
			out = append(out, p)
		}
	}
	return out
}

type Counts struct {
	Total     int `json:"total"`
	Scheduled int `json:"scheduled"`
	Draft     int `json:"draft"`
	Posted    int `json:"posted"`
}

// CountByStatus tallies the collection for the dashboard stat cards.
func CountByStatus(posts []models.Post) Counts {
	c := Counts{Total: len(posts)}
	for _, p := range posts {
		switch p.Status {
		case models.PostStatusScheduled:
			c.Scheduled++
		case models.PostStatusDraft:
			c.Draft++
		case models.PostStatusPosted:
			c.Posted++
		}
	}
	return c
}
