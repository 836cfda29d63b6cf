package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/lib/pq"
	"github.com/postcal/postcal/internal/models"
	"github.com/postcal/postcal/internal/store"
)

// postRepository is the Postgres-backed persistence gateway. It
// satisfies store.Store so the service layer cannot tell it apart from
// the in-memory or REST implementations.
type postRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) store.Store {
	return &postRepository{db: db}
}

func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	query := `SELECT id, caption, media, platform, origin, status, approval, scheduled_at, created_at, updated_at FROM posts ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		var p models.Post
		var scheduledAt sql.NullTime
		err := rows.Scan(&p.ID, &p.Caption, pq.Array(&p.Media), &p.Platform, &p.Origin, &p.Status, &p.Approval, &scheduledAt, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		if scheduledAt.Valid {
			t := scheduledAt.Time
			p.ScheduledAt = &t
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *postRepository) Save(ctx context.Context, p models.Post) (models.Post, error) {
	query := `
		INSERT INTO posts (id, caption, media, platform, origin, status, approval, scheduled_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			caption = EXCLUDED.caption,
			media = EXCLUDED.media,
			platform = EXCLUDED.platform,
			origin = EXCLUDED.origin,
			status = EXCLUDED.status,
			approval = EXCLUDED.approval,
			scheduled_at = EXCLUDED.scheduled_at,
			updated_at = EXCLUDED.updated_at
	`

	var scheduledAt sql.NullTime
	if p.ScheduledAt != nil {
		scheduledAt = sql.NullTime{Time: *p.ScheduledAt, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Caption, pq.Array(p.Media), p.Platform, p.Origin,
		p.Status, p.Approval, scheduledAt, p.CreatedAt, time.Now())
	if err != nil {
		slog.Info(err.Error())
		return p, err
	}
	return p, nil
}

func (r *postRepository) Remove(ctx context.Context, id string) error {
	query := `DELETE FROM posts WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)

	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
