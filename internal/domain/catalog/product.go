package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/shared"
)

// Product represents a sellable item in a store's catalog.
// It is the aggregate root for catalog operations.
type Product struct {
	shared.StoreAggregateRoot
	Name           string          `gorm:"type:varchar(200);not null"`
	Description    string          `gorm:"type:text"`
	Price          decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ImageURL       string          `gorm:"type:varchar(500)"`
	TrackInventory bool            `gorm:"not null;default:false"`
	StockQuantity  int             `gorm:"not null;default:0"`
	Published      bool            `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product in a store's catalog
func NewProduct(storeID uuid.UUID, name string, price decimal.Decimal) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &Product{
		StoreAggregateRoot: shared.NewStoreAggregateRoot(storeID),
		Name:               name,
		Price:              price,
	}, nil
}

// SetPrice updates the selling price
func (p *Product) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	p.Price = price
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetStock enables inventory tracking with the given on-hand quantity
func (p *Product) SetStock(quantity int) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock quantity cannot be negative")
	}
	p.TrackInventory = true
	p.StockQuantity = quantity
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// DisableInventoryTracking marks the product as always available
func (p *Product) DisableInventoryTracking() {
	p.TrackInventory = false
	p.StockQuantity = 0
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// Publish makes the product visible on the storefront
func (p *Product) Publish() {
	p.Published = true
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// Unpublish hides the product from the storefront
func (p *Product) Unpublish() {
	p.Published = false
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// Snapshot returns the display snapshot captured by carts at add-time
func (p *Product) Snapshot() Snapshot {
	return Snapshot{
		ProductID:      p.ID,
		Name:           p.Name,
		Price:          p.Price,
		ImageURL:       p.ImageURL,
		TrackInventory: p.TrackInventory,
		StockQuantity:  p.StockQuantity,
	}
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
