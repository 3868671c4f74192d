// internal/reviews/service.go
package reviews

import (
	"context"

	"libraryfront/internal/catalog"
)

// ReviewAPI is the slice of the REST client the review reads need.
type ReviewAPI interface {
	BookReviews(ctx context.Context, bookID string) ([]catalog.Review, error)
	MyReviews(ctx context.Context) ([]catalog.Review, error)
}

// Service exposes the review listings.
type Service interface {
	ForBook(ctx context.Context, bookID string) ([]catalog.Review, error)
	Mine(ctx context.Context) ([]catalog.Review, error)
}
