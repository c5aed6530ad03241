package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/shared"
)

// newMockProductRepository creates a GormProductRepository with a mocked SQL connection
func newMockProductRepository(t *testing.T) (*GormProductRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormProductRepository(gormDB), mock, mockDB
}

func productColumns() []string {
	return []string{"id", "store_id", "name", "price", "image_url", "track_inventory", "stock_quantity", "published"}
}

func TestGormProductRepository_FindByIDForStore(t *testing.T) {
	t.Run("finds product within store", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()
		storeID := uuid.New()

		rows := sqlmock.NewRows(productColumns()).
			AddRow(productID, storeID, "Canvas Tote", decimal.NewFromFloat(24.50), "tote.jpg", true, 5, true)

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE store_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(storeID, productID, 1).
			WillReturnRows(rows)

		product, err := repo.FindByIDForStore(context.Background(), storeID, productID)

		assert.NoError(t, err)
		assert.NotNil(t, product)
		assert.Equal(t, productID, product.ID)
		assert.Equal(t, storeID, product.StoreID)
		assert.True(t, product.Price.Equal(decimal.NewFromFloat(24.50)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("does not see another store's product", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()
		otherStoreID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE store_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(otherStoreID, productID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		product, err := repo.FindByIDForStore(context.Background(), otherStoreID, productID)

		assert.Error(t, err)
		assert.Nil(t, product)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_FindPublished(t *testing.T) {
	t.Run("returns only the store's published products", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		storeID := uuid.New()

		rows := sqlmock.NewRows(productColumns()).
			AddRow(uuid.New(), storeID, "Canvas Tote", decimal.NewFromFloat(24.50), "", false, 0, true).
			AddRow(uuid.New(), storeID, "Enamel Mug", decimal.NewFromFloat(9.99), "", true, 12, true)

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE store_id = \$1 AND published = \$2 ORDER BY created_at DESC`).
			WithArgs(storeID, true).
			WillReturnRows(rows)

		products, err := repo.FindPublished(context.Background(), storeID)

		assert.NoError(t, err)
		assert.Len(t, products, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns empty slice when store has no published products", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		storeID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE store_id = \$1 AND published = \$2 ORDER BY created_at DESC`).
			WithArgs(storeID, true).
			WillReturnRows(sqlmock.NewRows(productColumns()))

		products, err := repo.FindPublished(context.Background(), storeID)

		assert.NoError(t, err)
		assert.Empty(t, products)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_GetSnapshot(t *testing.T) {
	t.Run("returns snapshot for published product", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()
		storeID := uuid.New()

		rows := sqlmock.NewRows(productColumns()).
			AddRow(productID, storeID, "Canvas Tote", decimal.NewFromFloat(24.50), "tote.jpg", true, 5, true)

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE store_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(storeID, productID, 1).
			WillReturnRows(rows)

		snap, err := repo.GetSnapshot(context.Background(), storeID, productID)

		assert.NoError(t, err)
		assert.Equal(t, productID, snap.ProductID)
		assert.Equal(t, "Canvas Tote", snap.Name)
		assert.Equal(t, 5, snap.StockQuantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("hides unpublished product", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()
		storeID := uuid.New()

		rows := sqlmock.NewRows(productColumns()).
			AddRow(productID, storeID, "Draft Item", decimal.NewFromInt(10), "", false, 0, false)

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE store_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(storeID, productID, 1).
			WillReturnRows(rows)

		_, err := repo.GetSnapshot(context.Background(), storeID, productID)

		assert.Error(t, err)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
