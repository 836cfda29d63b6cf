package store

import (
	"context"
	"sync"

	"github.com/postcal/postcal/internal/models"
)

// MemoryStore keeps the collection in process memory, in insertion
// order. Used by the demo setup and as the reference implementation in
// tests.
type MemoryStore struct {
	mu    sync.RWMutex
	posts map[string]models.Post
	order []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		posts: make(map[string]models.Post),
	}
}

func (s *MemoryStore) List(ctx context.Context) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Post, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, clonePost(s.posts[id]))
	}
	return out, nil
}

func (s *MemoryStore) Save(ctx context.Context, p models.Post) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.posts[p.ID]; !exists {
		s.order = append(s.order, p.ID)
	}
	s.posts[p.ID] = clonePost(p)
	return p, nil
}

func (s *MemoryStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.posts[id]; !exists {
		return nil
	}
	delete(s.posts, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// clonePost copies the slice-valued fields so callers never share
// backing arrays with the stored record.
func clonePost(p models.Post) models.Post {
	out := p
	out.Media = append([]string(nil), p.Media...)
	if p.ScheduledAt != nil {
		t := *p.ScheduledAt
		out.ScheduledAt = &t
	}
	return out
}
