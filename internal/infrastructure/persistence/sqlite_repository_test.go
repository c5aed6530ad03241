package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/store"
)

// setupSQLiteDB opens an in-memory database and migrates the domain
// schema, giving the repositories a real SQL backend to run against.
func setupSQLiteDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&store.Store{}, &catalog.Product{})
	require.NoError(t, err)

	return db
}

func mustNewStore(t *testing.T, slug, name string) *store.Store {
	s, err := store.NewStore(slug, name)
	require.NoError(t, err)
	return s
}

func mustNewProduct(t *testing.T, storeID uuid.UUID, name, price string) *catalog.Product {
	p, err := catalog.NewProduct(storeID, name, decimal.RequireFromString(price))
	require.NoError(t, err)
	return p
}

func TestGormStoreRepository_RoundTrip(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewGormStoreRepository(db)
	ctx := context.Background()

	t.Run("saves and finds by ID", func(t *testing.T) {
		s := mustNewStore(t, "acme", "Acme Outfitters")
		require.NoError(t, repo.Save(ctx, s))

		found, err := repo.FindByID(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, "acme", found.Slug)
		assert.Equal(t, "Acme Outfitters", found.Name)
		assert.Equal(t, "USD", found.Currency)
		assert.True(t, found.IsActive())
	})

	t.Run("finds by slug regardless of case", func(t *testing.T) {
		s := mustNewStore(t, "pine-and-co", "Pine & Co")
		require.NoError(t, repo.Save(ctx, s))

		found, err := repo.FindBySlug(ctx, "Pine-And-Co")
		require.NoError(t, err)
		assert.Equal(t, s.ID, found.ID)
	})

	t.Run("returns not found for unknown slug", func(t *testing.T) {
		_, err := repo.FindBySlug(ctx, "ghost")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("persists status changes", func(t *testing.T) {
		s := mustNewStore(t, "dormant", "Dormant Shop")
		require.NoError(t, repo.Save(ctx, s))

		s.Suspend()
		require.NoError(t, repo.Save(ctx, s))

		found, err := repo.FindByID(ctx, s.ID)
		require.NoError(t, err)
		assert.False(t, found.IsActive())
		assert.Equal(t, 2, found.Version)
	})
}

func TestGormProductRepository_RoundTrip(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()
	storeID := uuid.New()

	t.Run("saves and finds within the owning store", func(t *testing.T) {
		p := mustNewProduct(t, storeID, "Canvas Tote", "24.50")
		require.NoError(t, repo.Save(ctx, p))

		found, err := repo.FindByIDForStore(ctx, storeID, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Canvas Tote", found.Name)
		assert.True(t, found.Price.Equal(decimal.RequireFromString("24.50")))
	})

	t.Run("does not find products of other stores", func(t *testing.T) {
		p := mustNewProduct(t, storeID, "Wool Scarf", "18.00")
		require.NoError(t, repo.Save(ctx, p))

		_, err := repo.FindByIDForStore(ctx, uuid.New(), p.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("lists only published products", func(t *testing.T) {
		listStoreID := uuid.New()
		visible := mustNewProduct(t, listStoreID, "Visible", "5.00")
		visible.Publish()
		hidden := mustNewProduct(t, listStoreID, "Hidden", "5.00")
		require.NoError(t, repo.Save(ctx, visible))
		require.NoError(t, repo.Save(ctx, hidden))

		products, err := repo.FindPublished(ctx, listStoreID)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Visible", products[0].Name)
	})

	t.Run("snapshot carries inventory state", func(t *testing.T) {
		p := mustNewProduct(t, storeID, "Enamel Mug", "12.00")
		require.NoError(t, p.SetStock(7))
		p.Publish()
		require.NoError(t, repo.Save(ctx, p))

		snap, err := repo.GetSnapshot(ctx, storeID, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.ID, snap.ProductID)
		assert.True(t, snap.TrackInventory)
		assert.Equal(t, 7, snap.StockQuantity)
	})

	t.Run("snapshot hides unpublished products", func(t *testing.T) {
		p := mustNewProduct(t, storeID, "Draft Item", "3.00")
		require.NoError(t, repo.Save(ctx, p))

		_, err := repo.GetSnapshot(ctx, storeID, p.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
