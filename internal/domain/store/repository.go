package store

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for store persistence
type Repository interface {
	// FindByID finds a store by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Store, error)

	// FindBySlug finds a store by its slug (subdomain label / path segment)
	FindBySlug(ctx context.Context, slug string) (*Store, error)

	// Save persists a store (create or update)
	Save(ctx context.Context, s *Store) error
}
