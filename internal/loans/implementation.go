// internal/loans/implementation.go
package loans

import (
	"context"
	"errors"

	"libraryfront/internal/cart"
	"libraryfront/internal/catalog"
	"libraryfront/internal/query"
)

// ErrEmptyCart is returned when a batch-borrow is attempted with nothing
// in the cart.
var ErrEmptyCart = errors.New("loans: cart is empty")

// Creating or returning a loan changes stock, so book listings and book
// details go stale along with the loan list and the admin dashboard.
var loanInvalidations = []query.Kind{
	query.KindMyLoans,
	query.KindBooks,
	query.KindBook,
	query.KindOverdueLoans,
	query.KindAdminOverview,
}

// service implements the Service interface.
type service struct {
	api     LoanAPI
	queries *query.Client
	cart    *cart.Store
}

// NewService creates a loan service around the shared cart and query
// client.
func NewService(loanAPI LoanAPI, queries *query.Client, cartStore *cart.Store) Service {
	return &service{api: loanAPI, queries: queries, cart: cartStore}
}

// BorrowBook creates a single loan and invalidates the dependent listings.
func (s *service) BorrowBook(ctx context.Context, bookID string) (catalog.Loan, error) {
	res, err := s.queries.Mutate(ctx, func(ctx context.Context) (any, error) {
		return s.api.BorrowBook(ctx, bookID)
	}, loanInvalidations...)
	if err != nil {
		return catalog.Loan{}, err
	}
	return res.(catalog.Loan), nil
}

// BorrowCart submits the cart's book IDs, read at call time, as one atomic
// batch request. On success the cart is cleared and the panel closed; on
// failure the cart is left untouched so the user may retry.
func (s *service) BorrowCart(ctx context.Context) ([]catalog.Loan, error) {
	ids := s.cart.IDs()
	if len(ids) == 0 {
		return nil, ErrEmptyCart
	}

	res, err := s.queries.Mutate(ctx, func(ctx context.Context) (any, error) {
		return s.api.BorrowBooks(ctx, ids)
	}, loanInvalidations...)
	if err != nil {
		return nil, err
	}

	s.cart.Clear()
	s.cart.SetOpen(false)
	return res.([]catalog.Loan), nil
}

// ReturnBook marks a loan returned and invalidates the dependent listings.
func (s *service) ReturnBook(ctx context.Context, loanID string) (catalog.Loan, error) {
	res, err := s.queries.Mutate(ctx, func(ctx context.Context) (any, error) {
		return s.api.ReturnBook(ctx, loanID)
	}, loanInvalidations...)
	if err != nil {
		return catalog.Loan{}, err
	}
	return res.(catalog.Loan), nil
}

// MyLoans reads the member's loans through the query cache.
func (s *service) MyLoans(ctx context.Context) ([]catalog.Loan, error) {
	res, err := s.queries.Query(ctx, query.NewKey(query.KindMyLoans, nil), func(ctx context.Context) (any, error) {
		return s.api.MyLoans(ctx)
	})
	if err != nil {
		return nil, err
	}
	return res.([]catalog.Loan), nil
}
