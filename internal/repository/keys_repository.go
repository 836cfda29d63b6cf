package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/postcal/postcal/internal/models"
)

type ApiKeyRepository interface {
	Create(ctx context.Context, key *models.ApiKey) (int64, error)
	List(ctx context.Context) ([]*models.ApiKey, error)
	Exists(ctx context.Context, apiKey string) (bool, error)
	Remove(ctx context.Context, id int64) error
}

type apiKeyRepository struct {
	db *sql.DB
}

func NewApiKeyRepository(db *sql.DB) ApiKeyRepository {
	return &apiKeyRepository{db: db}
}

func (r *apiKeyRepository) Create(ctx context.Context, key *models.ApiKey) (int64, error) {
	query := `
		INSERT INTO api_keys (name, api_key)
		VALUES ($1, $2)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, key.Name, key.ApiKey).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *apiKeyRepository) List(ctx context.Context) ([]*models.ApiKey, error) {
	query := `SELECT id, name, api_key, created_at FROM api_keys ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var keys []*models.ApiKey
	for rows.Next() {
		var k models.ApiKey
		if err := rows.Scan(&k.ID, &k.Name, &k.ApiKey, &k.CreatedAt); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		keys = append(keys, &k)
	}
	return keys, rows.Err()
}

func (r *apiKeyRepository) Exists(ctx context.Context, apiKey string) (bool, error) {
	query := `SELECT 1 FROM api_keys WHERE api_key = $1`

	var result int
	err := r.db.QueryRowContext(ctx, query, apiKey).Scan(&result)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		slog.Info(err.Error())
		return false, err
	}
	return result == 1, nil
}

func (r *apiKeyRepository) Remove(ctx context.Context, id int64) error {
	query := `DELETE FROM api_keys WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)

	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
