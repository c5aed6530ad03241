package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/storefront/backend/internal/domain/cart"
)

// RedisCartStorage implements cart.Storage using Redis. Each
// (owner, store) pair maps to one key holding the serialized items, so
// carts for different stores can never bleed into each other. This is
// suitable for distributed deployments where multiple instances need to
// share cart state.
type RedisCartStorage struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisCartStorage creates a new Redis-based cart storage
func NewRedisCartStorage(cfg RedisConfig, keyPrefix string, ttl time.Duration) (*RedisCartStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisCartStorageWithClient(client, keyPrefix, ttl), nil
}

// NewRedisCartStorageWithClient creates a storage with an existing Redis
// client. This is useful for testing or when sharing a client across
// components.
func NewRedisCartStorageWithClient(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisCartStorage {
	if keyPrefix == "" {
		keyPrefix = "cart:"
	}
	return &RedisCartStorage{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

// Load reads the persisted items for an owner's cart in a store.
// A missing key is an empty cart, never an error. An unreadable payload
// is reported as a corrupt-state error so the caller can discard it.
func (s *RedisCartStorage) Load(ctx context.Context, ownerID string, storeID uuid.UUID) ([]cart.LineItem, error) {
	payload, err := s.client.Get(ctx, s.key(ownerID, storeID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cart record: %w", err)
	}

	var items []cart.LineItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, cart.NewCorruptError(err)
	}
	return items, nil
}

// Save writes the serialized items, refreshing the record TTL
func (s *RedisCartStorage) Save(ctx context.Context, ownerID string, storeID uuid.UUID, items []cart.LineItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize cart items: %w", err)
	}

	if err := s.client.Set(ctx, s.key(ownerID, storeID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cart record: %w", err)
	}
	return nil
}

// Delete removes the record; deleting an absent record is not an error
func (s *RedisCartStorage) Delete(ctx context.Context, ownerID string, storeID uuid.UUID) error {
	if err := s.client.Del(ctx, s.key(ownerID, storeID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart record: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (s *RedisCartStorage) Close() error {
	return s.client.Close()
}

func (s *RedisCartStorage) key(ownerID string, storeID uuid.UUID) string {
	return s.keyPrefix + ownerID + ":" + storeID.String()
}

// Ensure RedisCartStorage implements cart.Storage
var _ cart.Storage = (*RedisCartStorage)(nil)
