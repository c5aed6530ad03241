package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cartapp "github.com/storefront/backend/internal/application/cart"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// CartHandler handles the shopper's cart endpoints. Each request
// attaches the shopper's session by cookie and binds it to the resolved
// store, so a shopper browsing two shops keeps two independent carts.
type CartHandler struct {
	BaseHandler
	manager *cartapp.Manager
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(manager *cartapp.Manager) *CartHandler {
	return &CartHandler{manager: manager}
}

// RegisterRoutes registers cart routes on the resolved-store group
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/cart", h.GetCart)
	rg.POST("/cart/items", h.AddItem)
	rg.PUT("/cart/items/:id", h.UpdateQuantity)
	rg.DELETE("/cart/items/:id", h.RemoveItem)
	rg.DELETE("/cart", h.ClearCart)
	rg.POST("/checkout", h.Checkout)
}

// session binds the shopper's cart session to the resolved store
func (h *CartHandler) session(c *gin.Context) (*cartapp.Session, bool) {
	tc := middleware.GetStoreContext(c)
	ownerID := middleware.GetSessionID(c)
	if tc == nil || ownerID == "" {
		h.InternalError(c, "Session context missing")
		return nil, false
	}

	session := h.manager.Attach(ownerID)
	session.Bind(c.Request.Context(), tc.StoreID())
	return session, true
}

// GetCart returns the current cart with computed totals
func (h *CartHandler) GetCart(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	h.Success(c, toCartResponse(session.Items(), session.Totals()))
}

// AddItem adds a product to the cart, merging into an existing line
func (h *CartHandler) AddItem(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if _, err := session.AddItem(c.Request.Context(), productID, req.Quantity); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, toCartResponse(session.Items(), session.Totals()))
}

// UpdateQuantity replaces a line's quantity; zero or less removes it
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	if err := session.UpdateQuantity(c.Request.Context(), productID, req.Quantity); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, toCartResponse(session.Items(), session.Totals()))
}

// RemoveItem deletes a line from the cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := session.RemoveItem(c.Request.Context(), productID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, toCartResponse(session.Items(), session.Totals()))
}

// ClearCart empties the cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	if err := session.Clear(c.Request.Context()); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, toCartResponse(nil, session.Totals()))
}

// Checkout completes the purchase of the current cart contents and
// clears the cart, so the next visit starts empty
func (h *CartHandler) Checkout(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	items := session.Items()
	if len(items) == 0 {
		h.BadRequest(c, "Cart is empty")
		return
	}
	totals := session.Totals()

	if err := session.Clear(c.Request.Context()); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	resp := CheckoutResponse{
		Items:         toCartResponse(items, totals).Items,
		TotalQuantity: totals.TotalQuantity,
		TotalPrice:    totals.TotalPrice.String(),
	}
	h.Success(c, resp)
}
