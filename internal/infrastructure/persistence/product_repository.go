package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByIDForStore finds a product by ID within a store
func (r *GormProductRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).
		Where("store_id = ? AND id = ?", storeID, id).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindPublished finds all published products for a store, newest first
func (r *GormProductRepository) FindPublished(ctx context.Context, storeID uuid.UUID) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.db.WithContext(ctx).
		Where("store_id = ? AND published = ?", storeID, true).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, p *catalog.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// GetSnapshot loads the current display snapshot for a published product.
// Unpublished products are invisible to shoppers, so they resolve to
// shared.ErrNotFound the same way a missing row does.
func (r *GormProductRepository) GetSnapshot(ctx context.Context, storeID, productID uuid.UUID) (catalog.Snapshot, error) {
	product, err := r.FindByIDForStore(ctx, storeID, productID)
	if err != nil {
		return catalog.Snapshot{}, err
	}
	if !product.Published {
		return catalog.Snapshot{}, shared.ErrNotFound
	}
	return product.Snapshot(), nil
}
