package catalog

import (
	"strings"

	"github.com/jerseystore/storefront-go/domain"
)

// AllCategories selects every category in a Query.
const AllCategories int64 = 0

// DefaultPageSize is the number of products per catalog page.
const DefaultPageSize = 10

// Query describes one catalog view: an active category filter, a
// case-insensitive search term, and a page index. A Query is a value; the
// With* methods return a modified copy, and changing the filter or the search
// term resets the page to 1.
type Query struct {
	Category int64
	Search   string
	Page     int
	PerPage  int
}

// NewQuery returns a query for page 1 of all products.
func NewQuery(perPage int) Query {
	if perPage < 1 {
		perPage = DefaultPageSize
	}
	return Query{Category: AllCategories, Page: 1, PerPage: perPage}
}

// WithCategory returns the query filtered to the given category, back on page 1.
func (q Query) WithCategory(categoryID int64) Query {
	q.Category = categoryID
	q.Page = 1
	return q
}

// WithSearch returns the query with the given search term, back on page 1.
func (q Query) WithSearch(term string) Query {
	q.Search = term
	q.Page = 1
	return q
}

// WithPage returns the query moved to the given page.
func (q Query) WithPage(page int) Query {
	q.Page = page
	return q
}

// Matches reports whether the product passes the query's category and search
// predicates.
func (q Query) Matches(p domain.Product) bool {
	if q.Category != AllCategories && p.CategoryID != q.Category {
		return false
	}
	term := strings.TrimSpace(q.Search)
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), strings.ToLower(term))
}

// Filter returns the products passing the query's predicates, preserving
// input order.
func Filter(products []domain.Product, q Query) []domain.Product {
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if q.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Result is one page of a filtered catalog.
type Result struct {
	Products   []domain.Product `json:"products"`
	TotalCount int              `json:"total_count"`
	Page       int              `json:"page"`
	PerPage    int              `json:"per_page"`
	TotalPages int              `json:"total_pages"`
	HasNext    bool             `json:"has_next"`
	HasPrev    bool             `json:"has_prev"`
}

// Paginate slices the filtered product list into the query's page.
// TotalPages is at least 1 even for an empty list, and the page index is
// clamped into [1, TotalPages], so an out-of-range query still yields a
// well-formed page.
func Paginate(filtered []domain.Product, q Query) Result {
	perPage := q.PerPage
	if perPage < 1 {
		perPage = DefaultPageSize
	}

	totalPages := len(filtered) / perPage
	if len(filtered)%perPage > 0 {
		totalPages++
	}
	if totalPages < 1 {
		totalPages = 1
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	products := make([]domain.Product, end-start)
	copy(products, filtered[start:end])

	return Result{
		Products:   products,
		TotalCount: len(filtered),
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
