// internal/api/loans.go
package api

import (
	"context"
	"net/http"

	"libraryfront/internal/catalog"
)

// BorrowBook creates a loan for a single book.
func (c *Client) BorrowBook(ctx context.Context, bookID string) (catalog.Loan, error) {
	body := struct {
		BookID string `json:"bookId"`
	}{bookID}
	var loan catalog.Loan
	err := c.send(ctx, http.MethodPost, "/api/loans", body, &loan)
	return loan, err
}

// BorrowBooks creates loans for several books in one atomic request.
func (c *Client) BorrowBooks(ctx context.Context, bookIDs []string) ([]catalog.Loan, error) {
	body := struct {
		BookIDs []string `json:"book_ids"`
	}{bookIDs}
	var loans []catalog.Loan
	err := c.send(ctx, http.MethodPost, "/api/loans/multiple", body, &loans)
	return loans, err
}

func (c *Client) ReturnBook(ctx context.Context, loanID string) (catalog.Loan, error) {
	var loan catalog.Loan
	err := c.send(ctx, http.MethodPatch, "/api/loans/"+loanID+"/return", nil, &loan)
	return loan, err
}

func (c *Client) MyLoans(ctx context.Context) ([]catalog.Loan, error) {
	var loans []catalog.Loan
	err := c.get(ctx, "/api/loans/my", nil, &loans)
	return loans, err
}
