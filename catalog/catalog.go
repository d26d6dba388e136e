// Package catalog holds the fetched product and category lists and answers
// filtered, paginated queries over them. The query itself is a pure function
// of (products, filter, search, page); the store only supplies the inputs.
package catalog

import (
	"sync"

	"github.com/jerseystore/storefront-go/domain"
)

// Store holds the catalog fetched from the backend. It is replaced wholesale
// after each fetch; individual products are never mutated.
type Store struct {
	mu         sync.Mutex
	products   []domain.Product
	categories []domain.Category

	subMu sync.Mutex
	next  int
	subs  map[int]func()
}

// NewStore creates an empty catalog store.
func NewStore() *Store {
	return &Store{}
}

// Subscribe registers fn to be called after every catalog replacement. The
// returned function removes the subscription.
func (s *Store) Subscribe(fn func()) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	if s.subs == nil {
		s.subs = make(map[int]func())
	}
	id := s.next
	s.next++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// SetCatalog replaces the product and category lists.
func (s *Store) SetCatalog(products []domain.Product, categories []domain.Category) {
	s.mu.Lock()
	s.products = append([]domain.Product(nil), products...)
	s.categories = append([]domain.Category(nil), categories...)
	s.mu.Unlock()

	s.notify()
}

// Products returns a copy of the full product list.
func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Product(nil), s.products...)
}

// Categories returns a copy of the category list.
func (s *Store) Categories() []domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Category(nil), s.categories...)
}

// Product returns the product with the given ID, if present.
func (s *Store) Product(id int64) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Page answers the query against the current product list.
func (s *Store) Page(q Query) Result {
	s.mu.Lock()
	products := s.products
	s.mu.Unlock()

	return Paginate(Filter(products, q), q)
}
