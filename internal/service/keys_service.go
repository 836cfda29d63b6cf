package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/postcal/postcal/internal/models"
	"github.com/postcal/postcal/internal/repository"
	"github.com/postcal/postcal/pkg/utils"
)

type ApiKeyService interface {
	Create(ctx context.Context, name string) (*models.ApiKey, error)
	List(ctx context.Context) ([]*models.ApiKey, error)
	Validate(ctx context.Context, apiKey string) error
	RemoveAPIKey(ctx context.Context, keyID int64) error
}

type apiKeyService struct {
	k repository.ApiKeyRepository
}

func NewApiKeyService(k repository.ApiKeyRepository) ApiKeyService {
	return &apiKeyService{
		k: k,
	}
}

func (s *apiKeyService) Create(ctx context.Context, name string) (*models.ApiKey, error) {
	keys, err := s.k.List(ctx)
	if err != nil {
		return nil, err
	}

	if len(keys) > 4 {
		err = errors.New("Only 5 API Keys can be created.")
		slog.Info(err.Error())
		return nil, err
	}

	key, err := utils.GenerateRandomKey(16)
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("Error generating API key")
	}

	apiKey := &models.ApiKey{
		Name:   name,
		ApiKey: key,
	}

	id, err := s.k.Create(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("Error saving API key")
	}
	apiKey.ID = id
	return apiKey, nil
}

func (s *apiKeyService) Validate(ctx context.Context, apiKey string) error {
	isExist, err := s.k.Exists(ctx, apiKey)
	if err != nil {
		return err
	}

	if !isExist {
		err = errors.New("Key doesn't exist")
		return err
	}

	return nil
}

func (s *apiKeyService) List(ctx context.Context) ([]*models.ApiKey, error) {
	apiKeys, err := s.k.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("Error getting API keys")
	}
	return apiKeys, nil
}

func (s *apiKeyService) RemoveAPIKey(ctx context.Context, keyID int64) error {
	if keyID == 0 {
		err := errors.New("KeyID is not valid")
		slog.Info(err.Error())
		return err
	}

	return s.k.Remove(ctx, keyID)
}
