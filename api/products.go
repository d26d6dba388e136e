package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jerseystore/storefront-go/domain"
)

// Products fetches the full product catalog.
func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var rows []productRow
	if err := c.do(ctx, "products", http.MethodGet, "/products", nil, &rows, ""); err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		p, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("get products: %w", err)
		}
		products = append(products, p)
	}
	return products, nil
}

// Product fetches a single product by ID.
func (c *Client) Product(ctx context.Context, id int64) (domain.Product, error) {
	var row productRow
	path := fmt.Sprintf("/products/%d", id)
	if err := c.do(ctx, "product", http.MethodGet, path, nil, &row, ""); err != nil {
		return domain.Product{}, fmt.Errorf("get product %d: %w", id, err)
	}

	p, err := row.toDomain()
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product %d: %w", id, err)
	}
	return p, nil
}
