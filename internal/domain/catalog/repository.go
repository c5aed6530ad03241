package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByIDForStore finds a product by ID within a store
	FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*Product, error)

	// FindPublished finds all published products for a store
	FindPublished(ctx context.Context, storeID uuid.UUID) ([]Product, error)

	// Save persists a product (create or update)
	Save(ctx context.Context, p *Product) error
}
