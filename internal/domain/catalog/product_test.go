package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	storeID := uuid.New()

	t.Run("creates product with valid inputs", func(t *testing.T) {
		p, err := NewProduct(storeID, "Canvas Tote", decimal.NewFromFloat(24.50))
		require.NoError(t, err)
		require.NotNil(t, p)

		assert.Equal(t, storeID, p.StoreID)
		assert.Equal(t, "Canvas Tote", p.Name)
		assert.True(t, p.Price.Equal(decimal.NewFromFloat(24.50)))
		assert.False(t, p.TrackInventory)
		assert.False(t, p.Published)
		assert.NotEmpty(t, p.ID)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewProduct(storeID, "", decimal.NewFromInt(10))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("fails with negative price", func(t *testing.T) {
		_, err := NewProduct(storeID, "Canvas Tote", decimal.NewFromInt(-1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be negative")
	})
}

func TestProductStock(t *testing.T) {
	storeID := uuid.New()

	t.Run("enables inventory tracking", func(t *testing.T) {
		p, err := NewProduct(storeID, "Canvas Tote", decimal.NewFromInt(10))
		require.NoError(t, err)

		require.NoError(t, p.SetStock(5))
		assert.True(t, p.TrackInventory)
		assert.Equal(t, 5, p.StockQuantity)
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		p, err := NewProduct(storeID, "Canvas Tote", decimal.NewFromInt(10))
		require.NoError(t, err)
		require.Error(t, p.SetStock(-1))
	})

	t.Run("disabling tracking resets quantity", func(t *testing.T) {
		p, err := NewProduct(storeID, "Canvas Tote", decimal.NewFromInt(10))
		require.NoError(t, err)

		require.NoError(t, p.SetStock(5))
		p.DisableInventoryTracking()
		assert.False(t, p.TrackInventory)
		assert.Equal(t, 0, p.StockQuantity)
	})
}

func TestSnapshotAvailable(t *testing.T) {
	t.Run("tracked products are capped by stock", func(t *testing.T) {
		snap := Snapshot{TrackInventory: true, StockQuantity: 3}
		assert.True(t, snap.Available(3))
		assert.False(t, snap.Available(4))
	})

	t.Run("untracked products are always available", func(t *testing.T) {
		snap := Snapshot{TrackInventory: false, StockQuantity: 0}
		assert.True(t, snap.Available(1000))
	})
}

func TestProductSnapshot(t *testing.T) {
	storeID := uuid.New()

	p, err := NewProduct(storeID, "Canvas Tote", decimal.NewFromFloat(24.50))
	require.NoError(t, err)
	p.ImageURL = "https://cdn.example.com/tote.jpg"
	require.NoError(t, p.SetStock(7))

	snap := p.Snapshot()
	assert.Equal(t, p.ID, snap.ProductID)
	assert.Equal(t, "Canvas Tote", snap.Name)
	assert.True(t, snap.Price.Equal(p.Price))
	assert.Equal(t, "https://cdn.example.com/tote.jpg", snap.ImageURL)
	assert.True(t, snap.TrackInventory)
	assert.Equal(t, 7, snap.StockQuantity)
}
