// internal/admin/service.go
package admin

import (
	"context"

	"libraryfront/internal/api"
	"libraryfront/internal/catalog"
)

// AdminAPI is the slice of the REST client the admin dashboard needs.
type AdminAPI interface {
	AdminCreateLoan(ctx context.Context, input api.AdminLoanInput) (catalog.Loan, error)
	AdminUpdateLoan(ctx context.Context, id string, update api.AdminLoanUpdate) (catalog.Loan, error)
	AdminOverdueLoans(ctx context.Context) ([]catalog.Loan, error)
	AdminOverview(ctx context.Context) (catalog.AdminOverview, error)
}

// Service exposes the administrative loan workflows and dashboard reads.
type Service interface {
	CreateLoan(ctx context.Context, input api.AdminLoanInput) (catalog.Loan, error)
	UpdateLoan(ctx context.Context, id string, update api.AdminLoanUpdate) (catalog.Loan, error)
	OverdueLoans(ctx context.Context) ([]catalog.Loan, error)
	Overview(ctx context.Context) (catalog.AdminOverview, error)
}
