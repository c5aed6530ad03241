package cache

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/shared"
)

func TestInMemoryCartStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := NewInMemoryCartStorage()
	storeID := uuid.New()

	items := []cart.LineItem{
		{ProductID: uuid.New(), Name: "Mug", UnitPrice: decimal.NewFromFloat(9.99), ImageURL: "mug.jpg", Quantity: 2},
		{ProductID: uuid.New(), Name: "Tote", UnitPrice: decimal.NewFromFloat(24.50), Quantity: 1},
	}

	require.NoError(t, storage.Save(ctx, "shopper-1", storeID, items))

	got, err := storage.Load(ctx, "shopper-1", storeID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, items[0].ProductID, got[0].ProductID)
	assert.Equal(t, items[0].Name, got[0].Name)
	assert.True(t, items[0].UnitPrice.Equal(got[0].UnitPrice))
	assert.Equal(t, items[1].Quantity, got[1].Quantity)
}

func TestInMemoryCartStorageMissingRecord(t *testing.T) {
	ctx := context.Background()
	storage := NewInMemoryCartStorage()

	items, err := storage.Load(ctx, "shopper-1", uuid.New())
	require.NoError(t, err)
	assert.Nil(t, items)
}

func TestInMemoryCartStorageScoping(t *testing.T) {
	ctx := context.Background()
	storage := NewInMemoryCartStorage()
	shopA := uuid.New()
	shopB := uuid.New()

	itemsA := []cart.LineItem{{ProductID: uuid.New(), Name: "Mug", UnitPrice: decimal.NewFromInt(10), Quantity: 2}}
	require.NoError(t, storage.Save(ctx, "shopper-1", shopA, itemsA))

	t.Run("other stores see no record", func(t *testing.T) {
		items, err := storage.Load(ctx, "shopper-1", shopB)
		require.NoError(t, err)
		assert.Nil(t, items)
	})

	t.Run("other owners see no record", func(t *testing.T) {
		items, err := storage.Load(ctx, "shopper-2", shopA)
		require.NoError(t, err)
		assert.Nil(t, items)
	})

	t.Run("deleting one record leaves others", func(t *testing.T) {
		require.NoError(t, storage.Save(ctx, "shopper-1", shopB, itemsA))
		require.NoError(t, storage.Delete(ctx, "shopper-1", shopB))

		items, err := storage.Load(ctx, "shopper-1", shopA)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})
}

func TestInMemoryCartStorageDelete(t *testing.T) {
	ctx := context.Background()
	storage := NewInMemoryCartStorage()
	storeID := uuid.New()

	t.Run("deleting an absent record is not an error", func(t *testing.T) {
		assert.NoError(t, storage.Delete(ctx, "shopper-1", storeID))
	})

	t.Run("deleted records read back as absent", func(t *testing.T) {
		items := []cart.LineItem{{ProductID: uuid.New(), Name: "Mug", UnitPrice: decimal.NewFromInt(10), Quantity: 1}}
		require.NoError(t, storage.Save(ctx, "shopper-1", storeID, items))
		require.NoError(t, storage.Delete(ctx, "shopper-1", storeID))

		got, err := storage.Load(ctx, "shopper-1", storeID)
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.Zero(t, storage.Len())
	})
}

func TestInMemoryCartStorageCorruptPayload(t *testing.T) {
	ctx := context.Background()
	storage := NewInMemoryCartStorage()
	storeID := uuid.New()

	storage.Put("shopper-1", storeID, []byte("{not json"))

	_, err := storage.Load(ctx, "shopper-1", storeID)
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrCartCorruptState)
}
