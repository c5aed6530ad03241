package handler

import (
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/store"
)

// StoreResponse represents a store profile in API responses
type StoreResponse struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
	Currency    string `json:"currency"`
}

// ProductResponse represents a catalog product in API responses
type ProductResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Price         string `json:"price"`
	ImageURL      string `json:"image_url,omitempty"`
	InStock       bool   `json:"in_stock"`
	StockQuantity *int   `json:"stock_quantity,omitempty"`
}

func toStoreResponse(s *store.Store) StoreResponse {
	return StoreResponse{
		ID:          s.ID.String(),
		Slug:        s.Slug,
		Name:        s.Name,
		Description: s.Description,
		LogoURL:     s.LogoURL,
		Currency:    s.Currency,
	}
}

// toProductResponse exposes the stock count only for tracked products;
// untracked products are simply "in stock"
func toProductResponse(p *catalog.Product) ProductResponse {
	resp := ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.String(),
		ImageURL:    p.ImageURL,
		InStock:     true,
	}
	if p.TrackInventory {
		qty := p.StockQuantity
		resp.StockQuantity = &qty
		resp.InStock = qty > 0
	}
	return resp
}
