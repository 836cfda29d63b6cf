package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/postcal/postcal/internal/models"
)

type BusinessRepository interface {
	List(ctx context.Context, limit, offset int) ([]*models.Business, error)
	Create(ctx context.Context, name string) (*models.Business, error)
	GetByID(ctx context.Context, id int64) (*models.Business, error)
	Update(ctx context.Context, id int64, name string) (*models.Business, error)
	Remove(ctx context.Context, id int64) (bool, error)
}

type businessRepository struct {
	db *sql.DB
}

func NewBusinessRepository(db *sql.DB) BusinessRepository {
	return &businessRepository{db: db}
}

func (r *businessRepository) List(ctx context.Context, limit, offset int) ([]*models.Business, error) {
	query := `SELECT id, name, created_at, updated_at FROM businesses ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var businesses []*models.Business
	for rows.Next() {
		var b models.Business
		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		businesses = append(businesses, &b)
	}
	return businesses, rows.Err()
}

func (r *businessRepository) Create(ctx context.Context, name string) (*models.Business, error) {
	query := `
		INSERT INTO businesses (name)
		VALUES ($1)
		RETURNING id, name, created_at, updated_at
	`

	var b models.Business
	err := r.db.QueryRowContext(ctx, query, name).Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return &b, nil
}

func (r *businessRepository) GetByID(ctx context.Context, id int64) (*models.Business, error) {
	query := `SELECT id, name, created_at, updated_at FROM businesses WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var b models.Business
	err := row.Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return &b, nil
}

func (r *businessRepository) Update(ctx context.Context, id int64, name string) (*models.Business, error) {
	query := `
		UPDATE businesses
		SET name = $1,
			updated_at = $2
		WHERE id = $3
		RETURNING id, name, created_at, updated_at
	`

	var b models.Business
	err := r.db.QueryRowContext(ctx, query, name, time.Now(), id).Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return &b, nil
}

func (r *businessRepository) Remove(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM businesses WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}
	return affected > 0, nil
}
