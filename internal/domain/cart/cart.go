package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/shared"
)

// LineItem is one product entry within a cart. Name, price and image
// are a display snapshot captured at add-time, not re-fetched on read.
type LineItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	ImageURL  string          `json:"image_url"`
	Quantity  int             `json:"quantity"`
}

// Subtotal returns UnitPrice multiplied by Quantity
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Totals holds the derived cart totals. They are computed on demand and
// never stored, so they cannot drift from the items.
type Totals struct {
	TotalQuantity int             `json:"total_quantity"`
	TotalPrice    decimal.Decimal `json:"total_price"`
}

// Cart is the tenant-scoped collection of line items for one shopper.
// Items keep insertion order for display stability, and at most one
// line exists per product: repeated adds merge into the existing line.
type Cart struct {
	storeID uuid.UUID
	items   []LineItem
}

// NewCart creates an empty cart scoped to a store
func NewCart(storeID uuid.UUID) *Cart {
	return &Cart{storeID: storeID}
}

// NewCartWithItems creates a cart hydrated from persisted items
func NewCartWithItems(storeID uuid.UUID, items []LineItem) *Cart {
	c := &Cart{storeID: storeID}
	c.items = append(c.items, items...)
	return c
}

// StoreID returns the scoping key of the cart
func (c *Cart) StoreID() uuid.UUID {
	return c.storeID
}

// AddItem adds quantity of a product to the cart. If a line for the
// product already exists its quantity is incremented and the display
// snapshot refreshed to the values given; otherwise a new line is
// appended. Quantity must be at least 1.
func (c *Cart) AddItem(productID uuid.UUID, name string, unitPrice decimal.Decimal, imageURL string, quantity int) error {
	if quantity < 1 {
		return shared.ErrInvalidQuantity
	}

	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity += quantity
			c.items[i].Name = name
			c.items[i].UnitPrice = unitPrice
			c.items[i].ImageURL = imageURL
			return nil
		}
	}

	c.items = append(c.items, LineItem{
		ProductID: productID,
		Name:      name,
		UnitPrice: unitPrice,
		ImageURL:  imageURL,
		Quantity:  quantity,
	})
	return nil
}

// UpdateQuantity replaces (not increments) the quantity of an existing
// line. A quantity of zero or less degenerates to removal; an unknown
// product is a no-op.
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the line for a product if present; no-op otherwise
func (c *Cart) RemoveItem(productID uuid.UUID) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear removes all lines
func (c *Cart) Clear() {
	c.items = nil
}

// Quantity returns the current quantity of a product, 0 if absent
func (c *Cart) Quantity(productID uuid.UUID) int {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			return c.items[i].Quantity
		}
	}
	return 0
}

// Items returns a copy of the lines in insertion order
func (c *Cart) Items() []LineItem {
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Totals computes the derived totals from the current items
func (c *Cart) Totals() Totals {
	t := Totals{TotalPrice: decimal.Zero}
	for i := range c.items {
		t.TotalQuantity += c.items[i].Quantity
		t.TotalPrice = t.TotalPrice.Add(c.items[i].Subtotal())
	}
	return t
}
