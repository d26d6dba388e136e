package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Product represents a catalog product. Products are read-only from the
// stores' perspective: cart and wishlist copy the value at insertion time
// rather than holding a live binding to the catalog.
type Product struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	ImageURL   string `json:"image_url,omitempty"`
	Stock      int    `json:"stock"`
	CategoryID int64  `json:"category_id,omitempty"`
}

// Category represents a product category (a club in the storefront backend).
type Category struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
	Slug    string `json:"slug,omitempty"`
}

// InStock reports whether the product has any stock left.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// Validate checks product invariants.
func (p Product) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("product id must be positive, got %d", p.ID)
	}
	if p.Price < 0 {
		return fmt.Errorf("product %d: price must not be negative, got %d", p.ID, p.Price)
	}
	if p.Stock < 0 {
		return fmt.Errorf("product %d: stock must not be negative, got %d", p.ID, p.Stock)
	}
	return nil
}

// ErrNoProduct is returned when a product payload handed between screens
// cannot be decoded. Callers degrade to an explicit empty state.
var ErrNoProduct = errors.New("no product")

// DecodeProduct decodes a product payload passed between screens. A malformed
// or invalid payload yields ErrNoProduct rather than a partial product.
func DecodeProduct(data []byte) (Product, error) {
	var p Product
	if err := json.Unmarshal(data, &p); err != nil {
		return Product{}, fmt.Errorf("%w: %v", ErrNoProduct, err)
	}
	if err := p.Validate(); err != nil {
		return Product{}, fmt.Errorf("%w: %v", ErrNoProduct, err)
	}
	return p, nil
}
