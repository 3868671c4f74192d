// internal/api/reviews.go
package api

import (
	"context"

	"libraryfront/internal/catalog"
)

func (c *Client) BookReviews(ctx context.Context, bookID string) ([]catalog.Review, error) {
	var reviews []catalog.Review
	err := c.get(ctx, "/api/books/"+bookID+"/reviews", nil, &reviews)
	return reviews, err
}

func (c *Client) MyReviews(ctx context.Context) ([]catalog.Review, error) {
	var reviews []catalog.Review
	err := c.get(ctx, "/api/reviews/my", nil, &reviews)
	return reviews, err
}
