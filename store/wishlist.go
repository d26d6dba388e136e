package store

import (
	"sync"

	"github.com/jerseystore/storefront-go/domain"
)

// Wishlist owns the set of liked products, stored as full product values in
// insertion order with uniqueness on product ID. There is no quantity concept.
type Wishlist struct {
	mu    sync.Mutex
	items []domain.Product

	notifier
}

// NewWishlist creates an empty wishlist.
func NewWishlist() *Wishlist {
	return &Wishlist{}
}

// Subscribe registers fn to be called after every wishlist change. The
// returned function removes the subscription.
func (w *Wishlist) Subscribe(fn func()) func() {
	return w.subscribe(fn)
}

// Add inserts the product unless an entry with the same ID already exists.
// Adding an already-wishlisted product is a no-op, so the operation is
// idempotent.
func (w *Wishlist) Add(p domain.Product) {
	w.mu.Lock()
	if w.indexOf(p.ID) >= 0 {
		w.mu.Unlock()
		return
	}
	w.items = append(w.items, p)
	w.mu.Unlock()

	w.notify()
}

// Remove deletes the entry for the product if present; no-op otherwise.
func (w *Wishlist) Remove(productID int64) {
	w.mu.Lock()
	i := w.indexOf(productID)
	if i < 0 {
		w.mu.Unlock()
		return
	}
	w.items = append(w.items[:i], w.items[i+1:]...)
	w.mu.Unlock()

	w.notify()
}

// Contains reports whether the product is wishlisted.
func (w *Wishlist) Contains(productID int64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.indexOf(productID) >= 0
}

// Items returns a copy of the wishlisted products in insertion order.
func (w *Wishlist) Items() []domain.Product {
	w.mu.Lock()
	defer w.mu.Unlock()

	items := make([]domain.Product, len(w.items))
	copy(items, w.items)
	return items
}

// Len returns the number of wishlisted products.
func (w *Wishlist) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.items)
}

// Clear empties the wishlist unconditionally.
func (w *Wishlist) Clear() {
	w.mu.Lock()
	w.items = nil
	w.mu.Unlock()

	w.notify()
}

// indexOf must be called with the mutex held.
func (w *Wishlist) indexOf(productID int64) int {
	for i := range w.items {
		if w.items[i].ID == productID {
			return i
		}
	}
	return -1
}
