package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jerseystore/storefront-go/domain"
)

// Clubs fetches the category list.
func (c *Client) Clubs(ctx context.Context) ([]domain.Category, error) {
	var rows []clubRow
	if err := c.do(ctx, "clubs", http.MethodGet, "/clubs", nil, &rows, ""); err != nil {
		return nil, fmt.Errorf("get clubs: %w", err)
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		cat, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("get clubs: %w", err)
		}
		categories = append(categories, cat)
	}
	return categories, nil
}
