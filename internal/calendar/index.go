// Package calendar derives views over the post collection: day buckets,
// the month grid, status lists and counts. All functions take the
// current collection as input and never mutate it; at hundreds of posts
// a full rebuild per call is cheap enough.
package calendar

import (
	"sort"
	"time"

	"github.com/postcal/postcal/internal/models"
)

const dayKeyLayout = "2006-01-02"

// DayKey is the calendar-day grouping key, time of day discarded.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// IndexByDay partitions posts by the calendar day of their effective
// date. Every post lands in exactly one bucket; bucket order follows
// input order until sorted by DayBucket.
func IndexByDay(posts []models.Post) map[string][]models.Post {
	index := make(map[string][]models.Post, len(posts))
	for _, p := range posts {
		key := DayKey(p.EffectiveAt())
		index[key] = append(index[key], p)
	}
	return index
}

// DayBucket returns the posts for a date ordered by effective time
// ascending. Ties keep insertion order.
func DayBucket(index map[string][]models.Post, date time.Time) []models.Post {
	bucket := index[DayKey(date)]
	out := append([]models.Post(nil), bucket...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EffectiveAt().Before(out[j].EffectiveAt())
	})
	return out
}

// DayCell is one rendered cell of the month grid. A nil cell is a
// leading or trailing blank that pads the first day to its weekday
// column.
type DayCell struct {
	Day   int           `json:"day"`
	Date  time.Time     `json:"date"`
	Today bool          `json:"today"`
	Posts []models.Post `json:"posts"`
}

// MonthGrid lays the month out on a Sunday-first 7-column grid. The
// result length is always a multiple of 7.
func MonthGrid(posts []models.Post, year int, month time.Month) []*DayCell {
	index := IndexByDay(posts)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	grid := make([]*DayCell, 0, 42)
	for i := 0; i < int(first.Weekday()); i++ {
		grid = append(grid, nil)
	}

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
		grid = append(grid, &DayCell{
			Day:   day,
			Date:  date,
			Today: IsToday(date),
			Posts: DayBucket(index, date),
		})
	}

	for len(grid)%7 != 0 {
		grid = append(grid, nil)
	}
	return grid
}

// IsToday reports whether a date falls on the current calendar day.
func IsToday(date time.Time) bool {
	return DayKey(date) == DayKey(time.Now())
}
