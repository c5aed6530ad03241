package handler

import (
	"github.com/storefront/backend/internal/domain/cart"
)

// AddItemRequest is the body for adding a product to the cart
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required"`
}

// UpdateQuantityRequest is the body for replacing a line's quantity
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartItemResponse represents one cart line in API responses
type CartItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	ImageURL  string `json:"image_url,omitempty"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

// CartResponse represents the full cart state in API responses
type CartResponse struct {
	Items         []CartItemResponse `json:"items"`
	TotalQuantity int                `json:"total_quantity"`
	TotalPrice    string             `json:"total_price"`
}

// CheckoutResponse confirms what was purchased before the cart cleared
type CheckoutResponse struct {
	Items         []CartItemResponse `json:"items"`
	TotalQuantity int                `json:"total_quantity"`
	TotalPrice    string             `json:"total_price"`
}

func toCartItemResponse(item cart.LineItem) CartItemResponse {
	return CartItemResponse{
		ProductID: item.ProductID.String(),
		Name:      item.Name,
		UnitPrice: item.UnitPrice.String(),
		ImageURL:  item.ImageURL,
		Quantity:  item.Quantity,
		Subtotal:  item.Subtotal().String(),
	}
}

func toCartResponse(items []cart.LineItem, totals cart.Totals) CartResponse {
	respItems := make([]CartItemResponse, len(items))
	for i, item := range items {
		respItems[i] = toCartItemResponse(item)
	}
	return CartResponse{
		Items:         respItems,
		TotalQuantity: totals.TotalQuantity,
		TotalPrice:    totals.TotalPrice.String(),
	}
}
