package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	cartdomain "github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// State represents the binding state of a cart session
type State string

const (
	StateUnbound State = "unbound"
	StateLoading State = "loading"
	StateReady   State = "ready"
)

// Session owns one shopper's cart for whichever store is currently
// resolved. Binding to a store hydrates the cart from storage; every
// mutation persists before returning, so a Totals call in the same tick
// reflects it. When storage fails the session degrades to memory-only
// for its remaining lifetime and the failure is logged once.
type Session struct {
	mu       sync.Mutex
	ownerID  string
	state    State
	storeID  uuid.UUID
	cart     *cartdomain.Cart
	storage  cartdomain.Storage
	products catalog.SnapshotLookup
	logger   *zap.Logger

	memoryOnly bool
}

// NewSession creates an unbound session for a shopper
func NewSession(ownerID string, storage cartdomain.Storage, products catalog.SnapshotLookup, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		ownerID:  ownerID,
		state:    StateUnbound,
		storage:  storage,
		products: products,
		logger:   logger,
	}
}

// State returns the current binding state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// StoreID returns the store the session is bound to
func (s *Session) StoreID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storeID
}

// Bind scopes the session to a store and hydrates the cart from
// storage. Rebinding to a different store discards the in-memory items
// of the previous one; its persisted copy stays untouched. Binding to
// the store already bound is a no-op.
//
// A corrupt persisted record is discarded and the cart starts empty; a
// storage read failure degrades the session to memory-only. Neither is
// surfaced to the caller.
func (s *Session) Bind(ctx context.Context, storeID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateReady && s.storeID == storeID {
		return
	}

	s.state = StateLoading
	s.storeID = storeID
	s.memoryOnly = false

	items, err := s.storage.Load(ctx, s.ownerID, storeID)
	if err != nil {
		if errors.Is(err, shared.ErrCartCorruptState) {
			s.logger.Warn("discarding corrupt cart record",
				zap.String("store_id", storeID.String()),
				zap.Error(err))
			if delErr := s.storage.Delete(ctx, s.ownerID, storeID); delErr != nil {
				s.degrade(delErr)
			}
		} else {
			s.degrade(err)
		}
		items = nil
	}

	s.cart = cartdomain.NewCartWithItems(storeID, items)
	s.state = StateReady
}

// AddItem fetches the product snapshot, checks the stock precondition
// and merges the quantity into the cart. The updated line is returned
// for confirmation display.
func (s *Session) AddItem(ctx context.Context, productID uuid.UUID, quantity int) (cartdomain.LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireReady(); err != nil {
		return cartdomain.LineItem{}, err
	}
	if quantity < 1 {
		return cartdomain.LineItem{}, shared.ErrInvalidQuantity
	}

	snap, err := s.products.GetSnapshot(ctx, s.storeID, productID)
	if err != nil {
		return cartdomain.LineItem{}, err
	}

	// Stock precondition: the requested total must not exceed stock when
	// the product tracks inventory. Untracked products always pass.
	if !snap.Available(s.cart.Quantity(productID) + quantity) {
		return cartdomain.LineItem{}, shared.ErrInsufficientStock
	}

	if err := s.cart.AddItem(productID, snap.Name, snap.Price, snap.ImageURL, quantity); err != nil {
		return cartdomain.LineItem{}, err
	}
	s.persist(ctx)

	for _, item := range s.cart.Items() {
		if item.ProductID == productID {
			return item, nil
		}
	}
	return cartdomain.LineItem{}, shared.ErrNotFound
}

// UpdateQuantity replaces the quantity of an existing line; zero or
// less removes it and an unknown product is a no-op.
func (s *Session) UpdateQuantity(ctx context.Context, productID uuid.UUID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireReady(); err != nil {
		return err
	}

	s.cart.UpdateQuantity(productID, quantity)
	s.persist(ctx)
	return nil
}

// RemoveItem deletes a line if present. When the cart becomes empty the
// persisted record is deleted rather than written as an empty array.
func (s *Session) RemoveItem(ctx context.Context, productID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireReady(); err != nil {
		return err
	}

	s.cart.RemoveItem(productID)
	s.persist(ctx)
	return nil
}

// Clear empties the cart and deletes the persisted record. It backs
// both the explicit empty-cart action and checkout completion, so an
// absent record always means "nothing in the cart" and never has to be
// disambiguated from a just-purchased one.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireReady(); err != nil {
		return err
	}

	s.cart.Clear()
	s.persist(ctx)
	return nil
}

// Items returns the current lines in insertion order
func (s *Session) Items() []cartdomain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return nil
	}
	return s.cart.Items()
}

// Totals computes the derived totals; pure, no side effects
func (s *Session) Totals() cartdomain.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return cartdomain.Totals{}
	}
	return s.cart.Totals()
}

func (s *Session) requireReady() error {
	if s.state != StateReady {
		return shared.ErrInvalidState
	}
	return nil
}

// persist writes the cart through to storage. An empty cart deletes the
// record instead of storing an empty array. Failures flip the session
// to memory-only; the mutation itself has already succeeded.
func (s *Session) persist(ctx context.Context) {
	if s.memoryOnly {
		return
	}

	var err error
	if s.cart.IsEmpty() {
		err = s.storage.Delete(ctx, s.ownerID, s.storeID)
	} else {
		err = s.storage.Save(ctx, s.ownerID, s.storeID, s.cart.Items())
	}
	if err != nil {
		s.degrade(err)
	}
}

// degrade switches to memory-only persistence, logging the cause once
func (s *Session) degrade(err error) {
	if s.memoryOnly {
		return
	}
	s.memoryOnly = true
	s.logger.Warn("cart storage unavailable, continuing in memory only",
		zap.String("store_id", s.storeID.String()),
		zap.Error(err))
}
