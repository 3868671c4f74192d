// internal/api/categories.go
package api

import (
	"context"
	"net/http"

	"libraryfront/internal/catalog"
)

// CategoryInput is the payload for creating or updating a category.
type CategoryInput struct {
	Name string `json:"name"`
}

func (c *Client) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	var categories []catalog.Category
	err := c.get(ctx, "/api/categories", nil, &categories)
	return categories, err
}

func (c *Client) CreateCategory(ctx context.Context, input CategoryInput) (catalog.Category, error) {
	var category catalog.Category
	err := c.send(ctx, http.MethodPost, "/api/categories", input, &category)
	return category, err
}

func (c *Client) UpdateCategory(ctx context.Context, id string, input CategoryInput) (catalog.Category, error) {
	var category catalog.Category
	err := c.send(ctx, http.MethodPut, "/api/categories/"+id, input, &category)
	return category, err
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/api/categories/"+id, nil, nil)
}
