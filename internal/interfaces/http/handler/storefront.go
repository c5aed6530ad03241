package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// StorefrontHandler serves the public shop-facing read endpoints: the
// store profile and its published catalog. The store itself is resolved
// by middleware before any of these run.
type StorefrontHandler struct {
	BaseHandler
	products catalog.ProductRepository
}

// NewStorefrontHandler creates a new StorefrontHandler
func NewStorefrontHandler(products catalog.ProductRepository) *StorefrontHandler {
	return &StorefrontHandler{products: products}
}

// RegisterRoutes registers storefront routes on the resolved-store group
func (h *StorefrontHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.GetStore)
	rg.GET("/products", h.ListProducts)
	rg.GET("/products/:id", h.GetProduct)
}

// GetStore returns the resolved store's public profile
func (h *StorefrontHandler) GetStore(c *gin.Context) {
	tc := middleware.GetStoreContext(c)
	if tc == nil {
		h.InternalError(c, "Store context missing")
		return
	}
	h.Success(c, toStoreResponse(tc.Store))
}

// ListProducts returns the store's published products
func (h *StorefrontHandler) ListProducts(c *gin.Context) {
	tc := middleware.GetStoreContext(c)
	if tc == nil {
		h.InternalError(c, "Store context missing")
		return
	}

	products, err := h.products.FindPublished(c.Request.Context(), tc.StoreID())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	resp := make([]ProductResponse, len(products))
	for i := range products {
		resp[i] = toProductResponse(&products[i])
	}
	h.Success(c, resp)
}

// GetProduct returns one published product from the store's catalog
func (h *StorefrontHandler) GetProduct(c *gin.Context) {
	tc := middleware.GetStoreContext(c)
	if tc == nil {
		h.InternalError(c, "Store context missing")
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.products.FindByIDForStore(c.Request.Context(), tc.StoreID(), productID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	if !product.Published {
		h.NotFound(c, "Product not found")
		return
	}

	h.Success(c, toProductResponse(product))
}
