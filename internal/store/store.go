// Package store is the persistence gateway for the post collection.
// It is the only layer allowed to touch durable storage; engine and
// service code depend on the Store interface alone, so the in-memory,
// REST-backed and Postgres-backed implementations are interchangeable.
package store

import (
	"context"

	"github.com/postcal/postcal/internal/models"
)

type Store interface {
	List(ctx context.Context) ([]models.Post, error)
	// Save inserts a new post or fully replaces the stored one with the
	// same ID.
	Save(ctx context.Context, p models.Post) (models.Post, error)
	// Remove deletes by ID. A missing ID is a no-op success.
	Remove(ctx context.Context, id string) error
}
