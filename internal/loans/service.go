// internal/loans/service.go
package loans

import (
	"context"

	"libraryfront/internal/catalog"
)

// LoanAPI is the slice of the REST client the loan workflows need.
type LoanAPI interface {
	BorrowBook(ctx context.Context, bookID string) (catalog.Loan, error)
	BorrowBooks(ctx context.Context, bookIDs []string) ([]catalog.Loan, error)
	ReturnBook(ctx context.Context, loanID string) (catalog.Loan, error)
	MyLoans(ctx context.Context) ([]catalog.Loan, error)
}

// Service coordinates borrow and return workflows between the cart, the
// query cache and the REST API.
type Service interface {
	BorrowBook(ctx context.Context, bookID string) (catalog.Loan, error)
	BorrowCart(ctx context.Context) ([]catalog.Loan, error)
	ReturnBook(ctx context.Context, loanID string) (catalog.Loan, error)
	MyLoans(ctx context.Context) ([]catalog.Loan, error)
}
