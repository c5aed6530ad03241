package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Snapshot is the denormalized product view captured when a shopper adds
// an item to their cart. Name, price and image are display values frozen
// at add-time; the stock fields feed the add-to-cart precondition.
type Snapshot struct {
	ProductID      uuid.UUID       `json:"product_id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	ImageURL       string          `json:"image_url"`
	TrackInventory bool            `json:"track_inventory"`
	StockQuantity  int             `json:"stock_quantity"`
}

// Available reports whether the requested quantity can be fulfilled.
// Products without inventory tracking are always available.
func (s Snapshot) Available(quantity int) bool {
	if !s.TrackInventory {
		return true
	}
	return quantity <= s.StockQuantity
}

// SnapshotLookup is the narrow product collaborator consumed by the cart
// session layer. It deliberately exposes only what add-to-cart needs.
type SnapshotLookup interface {
	// GetSnapshot returns the display snapshot for a published product
	// within a store, or shared.ErrNotFound
	GetSnapshot(ctx context.Context, storeID, productID uuid.UUID) (Snapshot, error)
}
