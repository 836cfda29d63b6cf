package service

import (
	"context"
	"log/slog"

	"github.com/postcal/postcal/internal/models"
	"github.com/postcal/postcal/internal/post"
	"github.com/postcal/postcal/internal/repository"
)

// BusinessService is pass-through table access for the businesses
// resource; presence-of-name is the only validation, same as the
// backend it replaces.
type BusinessService interface {
	List(ctx context.Context, limit, offset int) ([]*models.Business, error)
	Create(ctx context.Context, name string) (*models.Business, error)
	Get(ctx context.Context, id int64) (*models.Business, error)
	Update(ctx context.Context, id int64, name string) (*models.Business, error)
	Remove(ctx context.Context, id int64) error
}

type businessService struct {
	br repository.BusinessRepository
}

func NewBusinessService(br repository.BusinessRepository) BusinessService {
	return &businessService{br: br}
}

func (s *businessService) List(ctx context.Context, limit, offset int) ([]*models.Business, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.br.List(ctx, limit, offset)
}

func (s *businessService) Create(ctx context.Context, name string) (*models.Business, error) {
	if name == "" {
		slog.Info("business creation rejected: name is required")
		return nil, &post.ValidationError{Field: "name", Reason: "name is required"}
	}
	return s.br.Create(ctx, name)
}

func (s *businessService) Get(ctx context.Context, id int64) (*models.Business, error) {
	business, err := s.br.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, post.ErrNotFound
	}
	return business, nil
}

func (s *businessService) Update(ctx context.Context, id int64, name string) (*models.Business, error) {
	business, err := s.br.Update(ctx, id, name)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, post.ErrNotFound
	}
	return business, nil
}

func (s *businessService) Remove(ctx context.Context, id int64) error {
	found, err := s.br.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return post.ErrNotFound
	}
	return nil
}
