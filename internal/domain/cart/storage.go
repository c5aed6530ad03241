package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/shared"
)

// Storage persists one durable record per (owner, store) pair, holding
// the serialized line items. The owner is the shopper's session key;
// the store ID is the tenant scoping key, so carts for different stores
// never share a record. Absence of a record is an empty cart, never an
// error: Load returns (nil, nil) in that case.
//
// Unreadable payloads are reported by wrapping shared.ErrCartCorruptState
// so the session layer can discard the record and start empty.
type Storage interface {
	Load(ctx context.Context, ownerID string, storeID uuid.UUID) ([]LineItem, error)
	Save(ctx context.Context, ownerID string, storeID uuid.UUID, items []LineItem) error
	Delete(ctx context.Context, ownerID string, storeID uuid.UUID) error
}

// NewCorruptError wraps a decode failure so callers can match it with
// errors.Is(err, shared.ErrCartCorruptState)
func NewCorruptError(cause error) error {
	return fmt.Errorf("%w: %v", shared.ErrCartCorruptState, cause)
}
