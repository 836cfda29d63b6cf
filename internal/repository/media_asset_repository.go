package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/postcal/postcal/internal/models"
)

type MediaAssetRepository interface {
	Create(ctx context.Context, asset *models.MediaAsset) (int64, error)
	List(ctx context.Context) ([]*models.MediaAsset, error)
}

type mediaAssetRepository struct {
	db *sql.DB
}

func NewMediaAssetRepository(db *sql.DB) MediaAssetRepository {
	return &mediaAssetRepository{db: db}
}

func (r *mediaAssetRepository) Create(ctx context.Context, asset *models.MediaAsset) (int64, error) {
	query := `
		INSERT INTO media_assets (file_name, file_type, file_size, file_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, asset.FileName, asset.FileType, asset.FileSize, asset.FileURL).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *mediaAssetRepository) List(ctx context.Context) ([]*models.MediaAsset, error) {
	query := `SELECT id, file_name, file_type, file_size, file_url, created_at FROM media_assets ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var assets []*models.MediaAsset
	for rows.Next() {
		var a models.MediaAsset
		if err := rows.Scan(&a.ID, &a.FileName, &a.FileType, &a.FileSize, &a.FileURL, &a.CreatedAt); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		assets = append(assets, &a)
	}
	return assets, rows.Err()
}
