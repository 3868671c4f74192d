// internal/api/admin.go
package api

import (
	"context"
	"net/http"
	"time"

	"libraryfront/internal/catalog"
)

// AdminLoanInput is the payload for creating a loan on a member's behalf.
type AdminLoanInput struct {
	UserID  string    `json:"user_id"`
	BookID  string    `json:"book_id"`
	DueDate time.Time `json:"due_date,omitempty"`
}

// AdminLoanUpdate adjusts an existing loan.
type AdminLoanUpdate struct {
	Status  string    `json:"status,omitempty"`
	DueDate time.Time `json:"due_date,omitempty"`
}

func (c *Client) AdminCreateLoan(ctx context.Context, input AdminLoanInput) (catalog.Loan, error) {
	var loan catalog.Loan
	err := c.send(ctx, http.MethodPost, "/api/admin/loans", input, &loan)
	return loan, err
}

func (c *Client) AdminUpdateLoan(ctx context.Context, id string, update AdminLoanUpdate) (catalog.Loan, error) {
	var loan catalog.Loan
	err := c.send(ctx, http.MethodPatch, "/api/admin/loans/"+id, update, &loan)
	return loan, err
}

func (c *Client) AdminOverdueLoans(ctx context.Context) ([]catalog.Loan, error) {
	var loans []catalog.Loan
	err := c.get(ctx, "/api/admin/loans/overdue", nil, &loans)
	return loans, err
}

func (c *Client) AdminOverview(ctx context.Context) (catalog.AdminOverview, error) {
	var overview catalog.AdminOverview
	err := c.get(ctx, "/api/admin/overview", nil, &overview)
	return overview, err
}
