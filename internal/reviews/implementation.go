// internal/reviews/implementation.go
package reviews

import (
	"context"

	"libraryfront/internal/catalog"
	"libraryfront/internal/query"
)

// service implements the Service interface.
type service struct {
	api     ReviewAPI
	queries *query.Client
}

// NewService creates a review service around the shared query client.
func NewService(reviewAPI ReviewAPI, queries *query.Client) Service {
	return &service{api: reviewAPI, queries: queries}
}

// ForBook lists the reviews on a book's detail page.
func (s *service) ForBook(ctx context.Context, bookID string) ([]catalog.Review, error) {
	res, err := s.queries.Query(ctx, query.NewKey(query.KindBookReviews, map[string]string{"book": bookID}), func(ctx context.Context) (any, error) {
		return s.api.BookReviews(ctx, bookID)
	})
	if err != nil {
		return nil, err
	}
	return res.([]catalog.Review), nil
}

// Mine lists the signed-in member's reviews.
func (s *service) Mine(ctx context.Context) ([]catalog.Review, error) {
	res, err := s.queries.Query(ctx, query.NewKey(query.KindMyReviews, nil), func(ctx context.Context) (any, error) {
		return s.api.MyReviews(ctx)
	})
	if err != nil {
		return nil, err
	}
	return res.([]catalog.Review), nil
}
