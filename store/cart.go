// Package store holds the client-side session state: the cart and the
// wishlist. Stores are plain injected values with a subscription surface, not
// ambient globals. All state is session-only and empty on cold start.
package store

import (
	"sync"

	"github.com/jerseystore/storefront-go/domain"
)

// Cart owns the list of cart entries. At most one entry exists per product;
// adding an already-present product merges by incrementing its quantity.
//
// None of the operations fail: unknown product IDs are silent no-ops, and
// derived values are recomputed under the same critical section as the
// mutation, so a reader never observes a total inconsistent with the items.
type Cart struct {
	mu    sync.Mutex
	items []domain.CartItem

	notifier
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Subscribe registers fn to be called after every cart change. The returned
// function removes the subscription.
func (c *Cart) Subscribe(fn func()) func() {
	return c.subscribe(fn)
}

// Add inserts the product with quantity 1, or increments the quantity of the
// existing entry for the same product.
//
// The increment path deliberately does not clamp to stock: repeated adds can
// exceed it, and only UpdateQuantity enforces the stock bound. Whether that
// asymmetry is intended upstream is unresolved, so it is preserved rather
// than unified. A zero-stock product is likewise accepted; callers gate on
// stock before offering the action.
func (c *Cart) Add(p domain.Product) {
	c.mu.Lock()
	if i := domain.FindItemIndex(c.items, p.ID); i >= 0 {
		c.items[i].Quantity++
	} else {
		c.items = append(c.items, domain.CartItemFromProduct(p, 1))
	}
	c.mu.Unlock()

	c.notify()
}

// UpdateQuantity sets the entry's quantity to min(quantity, stock). A
// quantity of zero or less removes the entry. Unknown product IDs are a
// no-op.
func (c *Cart) UpdateQuantity(productID int64, quantity int) {
	c.mu.Lock()
	i := domain.FindItemIndex(c.items, productID)
	if i < 0 {
		c.mu.Unlock()
		return
	}

	if quantity <= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	} else {
		if quantity > c.items[i].Stock {
			quantity = c.items[i].Stock
		}
		c.items[i].Quantity = quantity
	}
	c.mu.Unlock()

	c.notify()
}

// Remove deletes the entry for the product if present; no-op otherwise.
func (c *Cart) Remove(productID int64) {
	c.mu.Lock()
	i := domain.FindItemIndex(c.items, productID)
	if i < 0 {
		c.mu.Unlock()
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.mu.Unlock()

	c.notify()
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()

	c.notify()
}

// Items returns a copy of the cart entries in insertion order.
func (c *Cart) Items() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]domain.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// TotalPrice returns the sum of price times quantity over all entries. It is
// derived from the items on every call and never cached.
func (c *Cart) TotalPrice() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.TotalPrice(c.items)
}

// Len returns the number of distinct entries, as shown on the cart badge.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Quantity returns the quantity for the product, or 0 if absent.
func (c *Cart) Quantity(productID int64) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := domain.FindItemIndex(c.items, productID); i >= 0 {
		return c.items[i].Quantity
	}
	return 0
}
