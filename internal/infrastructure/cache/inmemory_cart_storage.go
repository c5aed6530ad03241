package cache

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/cart"
)

// InMemoryCartStorage implements cart.Storage using an in-memory map.
// This is suitable for single-instance deployments and testing. Records
// hold the JSON payload rather than the decoded items so load behaves
// byte-for-byte like the Redis implementation, corrupt payloads included.
type InMemoryCartStorage struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewInMemoryCartStorage creates a new in-memory cart storage
func NewInMemoryCartStorage() *InMemoryCartStorage {
	return &InMemoryCartStorage{
		records: make(map[string][]byte),
	}
}

// Load reads the persisted items; a missing record is an empty cart
func (s *InMemoryCartStorage) Load(ctx context.Context, ownerID string, storeID uuid.UUID) ([]cart.LineItem, error) {
	s.mu.RLock()
	payload, ok := s.records[key(ownerID, storeID)]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}

	var items []cart.LineItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, cart.NewCorruptError(err)
	}
	return items, nil
}

// Save writes the serialized items
func (s *InMemoryCartStorage) Save(ctx context.Context, ownerID string, storeID uuid.UUID, items []cart.LineItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.records[key(ownerID, storeID)] = payload
	s.mu.Unlock()
	return nil
}

// Delete removes the record; deleting an absent record is not an error
func (s *InMemoryCartStorage) Delete(ctx context.Context, ownerID string, storeID uuid.UUID) error {
	s.mu.Lock()
	delete(s.records, key(ownerID, storeID))
	s.mu.Unlock()
	return nil
}

// Put stores a raw payload directly, bypassing serialization.
// Intended for tests that need to simulate corrupt records.
func (s *InMemoryCartStorage) Put(ownerID string, storeID uuid.UUID, payload []byte) {
	s.mu.Lock()
	s.records[key(ownerID, storeID)] = payload
	s.mu.Unlock()
}

// Len returns the number of stored records
func (s *InMemoryCartStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func key(ownerID string, storeID uuid.UUID) string {
	return ownerID + ":" + storeID.String()
}

// Ensure InMemoryCartStorage implements cart.Storage
var _ cart.Storage = (*InMemoryCartStorage)(nil)
