// internal/admin/implementation.go
package admin

import (
	"context"

	"libraryfront/internal/api"
	"libraryfront/internal/catalog"
	"libraryfront/internal/query"
)

// Loan writes move stock and due dates, so both dashboard reads and the
// member-facing loan and book listings go stale.
var loanInvalidations = []query.Kind{
	query.KindOverdueLoans,
	query.KindAdminOverview,
	query.KindMyLoans,
	query.KindBooks,
	query.KindBook,
}

// service implements the Service interface.
type service struct {
	api     AdminAPI
	queries *query.Client
}

// NewService creates an admin service around the shared query client.
func NewService(adminAPI AdminAPI, queries *query.Client) Service {
	return &service{api: adminAPI, queries: queries}
}

// CreateLoan opens a loan on a member's behalf.
func (s *service) CreateLoan(ctx context.Context, input api.AdminLoanInput) (catalog.Loan, error) {
	res, err := s.queries.Mutate(ctx, func(ctx context.Context) (any, error) {
		return s.api.AdminCreateLoan(ctx, input)
	}, loanInvalidations...)
	if err != nil {
		return catalog.Loan{}, err
	}
	return res.(catalog.Loan), nil
}

// UpdateLoan edits a loan's status or due date.
func (s *service) UpdateLoan(ctx context.Context, id string, update api.AdminLoanUpdate) (catalog.Loan, error) {
	res, err := s.queries.Mutate(ctx, func(ctx context.Context) (any, error) {
		return s.api.AdminUpdateLoan(ctx, id, update)
	}, loanInvalidations...)
	if err != nil {
		return catalog.Loan{}, err
	}
	return res.(catalog.Loan), nil
}

// OverdueLoans lists every loan past its due date.
func (s *service) OverdueLoans(ctx context.Context) ([]catalog.Loan, error) {
	res, err := s.queries.Query(ctx, query.NewKey(query.KindOverdueLoans, nil), func(ctx context.Context) (any, error) {
		return s.api.AdminOverdueLoans(ctx)
	})
	if err != nil {
		return nil, err
	}
	return res.([]catalog.Loan), nil
}

// Overview reads the dashboard summary.
func (s *service) Overview(ctx context.Context) (catalog.AdminOverview, error) {
	res, err := s.queries.Query(ctx, query.NewKey(query.KindAdminOverview, nil), func(ctx context.Context) (any, error) {
		return s.api.AdminOverview(ctx)
	})
	if err != nil {
		return catalog.AdminOverview{}, err
	}
	return res.(catalog.AdminOverview), nil
}
