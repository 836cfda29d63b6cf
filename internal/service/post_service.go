package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/postcal/postcal/internal/calendar"
	"github.com/postcal/postcal/internal/models"
	"github.com/postcal/postcal/internal/post"
	"github.com/postcal/postcal/internal/store"
	"github.com/postcal/postcal/internal/transfer"
)

// scheduledTimeLayout matches the datetime-local inputs the dashboard
// submits.
const scheduledTimeLayout = "2006-01-02T15:04"

type PostService interface {
	Create(ctx context.Context, pc *transfer.PostCreation) (*models.Post, time.Duration, error)
	List(ctx context.Context, status, term string) ([]models.Post, error)
	Get(ctx context.Context, id string) (*models.Post, error)
	Update(ctx context.Context, id string, patch *transfer.PostUpdate) (*models.Post, error)
	Remove(ctx context.Context, id string) error
	Schedule(ctx context.Context, id, scheduledAt string) (*models.Post, time.Duration, error)
	RevertToDraft(ctx context.Context, id string) (*models.Post, error)
	PublishNow(ctx context.Context, id string) (*models.Post, error)
	Approve(ctx context.Context, id string) (*models.Post, error)
	Deny(ctx context.Context, id string) (*models.Post, error)
	Counts(ctx context.Context) (calendar.Counts, error)
	MonthGrid(ctx context.Context, year int, month time.Month) ([]*calendar.DayCell, error)
}

type postService struct {
	st store.Store
}

func NewPostService(st store.Store) PostService {
	return &postService{st: st}
}

func (s *postService) Create(ctx context.Context, pc *transfer.PostCreation) (*models.Post, time.Duration, error) {
	if pc == nil {
		err := errors.New("post creation data is nil")
		slog.Error(err.Error())
		return nil, 0, err
	}

	in := post.CreateInput{
		Caption:  pc.Caption,
		Media:    pc.Media,
		Platform: pc.Platform,
		Origin:   pc.Origin,
	}
	if pc.ScheduledAt != "" {
		scheduledAt, err := time.Parse(scheduledTimeLayout, pc.ScheduledAt)
		if err != nil {
			return nil, 0, &post.ValidationError{Field: "scheduled_at", Reason: "expected format " + scheduledTimeLayout}
		}
		in.ScheduledAt = &scheduledAt
	}

	created, err := post.Create(in)
	if err != nil {
		return nil, 0, err
	}

	saved, err := s.st.Save(ctx, created)
	if err != nil {
		return nil, 0, fmt.Errorf("error saving post: %w", err)
	}

	return &saved, publishDelay(&saved), nil
}

func (s *postService) List(ctx context.Context, status, term string) ([]models.Post, error) {
	posts, err := s.st.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}

	if status != "" {
		posts = calendar.ByStatus(posts, status)
	}
	return calendar.Search(posts, term), nil
}

func (s *postService) Get(ctx context.Context, id string) (*models.Post, error) {
	return s.find(ctx, id)
}

func (s *postService) Update(ctx context.Context, id string, patch *transfer.PostUpdate) (*models.Post, error) {
	if patch == nil {
		err := errors.New("post update data is nil")
		slog.Error(err.Error())
		return nil, err
	}

	current, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	p := post.UpdatePatch{
		Caption: patch.Caption,
		Media:   patch.Media,
		Status:  patch.Status,
	}
	if patch.ScheduledAt != "" {
		scheduledAt, err := time.Parse(scheduledTimeLayout, patch.ScheduledAt)
		if err != nil {
			return nil, &post.ValidationError{Field: "scheduled_at", Reason: "expected format " + scheduledTimeLayout}
		}
		p.ScheduledAt = &scheduledAt
	}

	updated, err := post.Update(*current, p)
	if err != nil {
		return nil, err
	}

	saved, err := s.st.Save(ctx, updated)
	if err != nil {
		return nil, fmt.Errorf("error saving post: %w", err)
	}
	return &saved, nil
}

func (s *postService) Remove(ctx context.Context, id string) error {
	// Delete-if-present: a missing ID is not an error.
	if err := s.st.Remove(ctx, id); err != nil {
		return fmt.Errorf("error removing post: %w", err)
	}
	return nil
}

func (s *postService) Schedule(ctx context.Context, id, scheduledAt string) (*models.Post, time.Duration, error) {
	at, err := time.Parse(scheduledTimeLayout, scheduledAt)
	if err != nil {
		return nil, 0, &post.ValidationError{Field: "scheduled_at", Reason: "expected format " + scheduledTimeLayout}
	}

	saved, err := s.transition(ctx, id, func(p models.Post) (models.Post, error) {
		return post.Schedule(p, at)
	})
	if err != nil {
		return nil, 0, err
	}
	return saved, publishDelay(saved), nil
}

func (s *postService) RevertToDraft(ctx context.Context, id string) (*models.Post, error) {
	return s.transition(ctx, id, post.RevertToDraft)
}

func (s *postService) PublishNow(ctx context.Context, id string) (*models.Post, error) {
	return s.transition(ctx, id, post.PublishNow)
}

func (s *postService) Approve(ctx context.Context, id string) (*models.Post, error) {
	return s.transition(ctx, id, post.Approve)
}

func (s *postService) Deny(ctx context.Context, id string) (*models.Post, error) {
	return s.transition(ctx, id, post.Deny)
}

func (s *postService) Counts(ctx context.Context) (calendar.Counts, error) {
	posts, err := s.st.List(ctx)
	if err != nil {
		return calendar.Counts{}, fmt.Errorf("error listing posts: %w", err)
	}
	return calendar.CountByStatus(posts), nil
}

func (s *postService) MonthGrid(ctx context.Context, year int, month time.Month) ([]*calendar.DayCell, error) {
	posts, err := s.st.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	return calendar.MonthGrid(posts, year, month), nil
}

// transition loads, applies one lifecycle step and saves. The store is
// only written after the guard passed, so a rejection leaves state
// untouched.
func (s *postService) transition(ctx context.Context, id string, step func(models.Post) (models.Post, error)) (*models.Post, error) {
	current, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := step(*current)
	if err != nil {
		return nil, err
	}

	saved, err := s.st.Save(ctx, next)
	if err != nil {
		return nil, fmt.Errorf("error saving post: %w", err)
	}
	return &saved, nil
}

func (s *postService) find(ctx context.Context, id string) (*models.Post, error) {
	if id == "" {
		return nil, &post.ValidationError{Field: "id", Reason: "post id is required"}
	}

	posts, err := s.st.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	for i := range posts {
		if posts[i].ID == id {
			return &posts[i], nil
		}
	}
	return nil, post.ErrNotFound
}

// publishDelay is how long until a scheduled post is due, clamped to
// zero for past times.
func publishDelay(p *models.Post) time.Duration {
	if p.Status != models.PostStatusScheduled || p.ScheduledAt == nil {
		return 0
	}
	delay := time.Until(*p.ScheduledAt)
	if delay < 0 {
		delay = 0
	}
	return delay
}
