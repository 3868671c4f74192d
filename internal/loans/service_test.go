// internal/loans/service_test.go
package loans

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryfront/internal/api"
	"libraryfront/internal/cart"
	"libraryfront/internal/catalog"
	"libraryfront/internal/query"
)

type stubLoanAPI struct {
	borrowed    []string
	borrowErr   error
	loans       []catalog.Loan
	myLoansHits int
}

func (s *stubLoanAPI) BorrowBook(ctx context.Context, bookID string) (catalog.Loan, error) {
	if s.borrowErr != nil {
		return catalog.Loan{}, s.borrowErr
	}
	s.borrowed = append(s.borrowed, bookID)
	return catalog.Loan{ID: "l-" + bookID, BookID: bookID, Status: catalog.LoanActive}, nil
}

func (s *stubLoanAPI) BorrowBooks(ctx context.Context, bookIDs []string) ([]catalog.Loan, error) {
	if s.borrowErr != nil {
		return nil, s.borrowErr
	}
	loans := make([]catalog.Loan, 0, len(bookIDs))
	for _, id := range bookIDs {
		s.borrowed = append(s.borrowed, id)
		loans = append(loans, catalog.Loan{ID: "l-" + id, BookID: id, Status: catalog.LoanActive})
	}
	return loans, nil
}

func (s *stubLoanAPI) ReturnBook(ctx context.Context, loanID string) (catalog.Loan, error) {
	return catalog.Loan{ID: loanID, Status: catalog.LoanReturned}, nil
}

func (s *stubLoanAPI) MyLoans(ctx context.Context) ([]catalog.Loan, error) {
	s.myLoansHits++
	return s.loans, nil
}

func newTestService(stub *stubLoanAPI) (Service, *cart.Store, *query.Client) {
	cartStore := cart.NewStore()
	queries := query.NewClient(query.Options{})
	return NewService(stub, queries, cartStore), cartStore, queries
}

func TestBorrowCartClearsAndClosesOnSuccess(t *testing.T) {
	stub := &stubLoanAPI{}
	svc, cartStore, _ := newTestService(stub)
	cartStore.Add(cart.Item{ID: "b1", Title: "Dune", Stock: 3})
	cartStore.Add(cart.Item{ID: "b2", Title: "Hyperion", Stock: 1})
	cartStore.SetOpen(true)

	loans, err := svc.BorrowCart(context.Background())
	require.NoError(t, err)
	require.Len(t, loans, 2)
	assert.Equal(t, []string{"b1", "b2"}, stub.borrowed)
	assert.Zero(t, cartStore.Len())
	assert.False(t, cartStore.IsOpen())
}

func TestBorrowCartLeavesCartOnFailure(t *testing.T) {
	stub := &stubLoanAPI{borrowErr: &api.Error{Status: 409, Message: "book is out of stock"}}
	svc, cartStore, _ := newTestService(stub)
	cartStore.Add(cart.Item{ID: "b1", Title: "Dune", Stock: 3})
	cartStore.SetOpen(true)

	_, err := svc.BorrowCart(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, cartStore.Len(), "failed borrow must not drain the cart")
	assert.True(t, cartStore.IsOpen())
}

func TestBorrowCartEmptyCart(t *testing.T) {
	svc, _, _ := newTestService(&stubLoanAPI{})

	_, err := svc.BorrowCart(context.Background())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestBorrowInvalidatesLoanListing(t *testing.T) {
	stub := &stubLoanAPI{}
	svc, _, _ := newTestService(stub)

	_, err := svc.MyLoans(context.Background())
	require.NoError(t, err)
	_, err = svc.MyLoans(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stub.myLoansHits, "loans read twice must hit the cache")

	_, err = svc.BorrowBook(context.Background(), "b1")
	require.NoError(t, err)

	_, err = svc.MyLoans(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stub.myLoansHits, "borrow must force the loan list stale")
}

func TestFailedBorrowLeavesCachesAlone(t *testing.T) {
	stub := &stubLoanAPI{loans: []catalog.Loan{{ID: "l1", Status: catalog.LoanActive}}}
	svc, _, _ := newTestService(stub)

	_, err := svc.MyLoans(context.Background())
	require.NoError(t, err)

	stub.borrowErr = errors.New("connection reset")
	_, err = svc.BorrowBook(context.Background(), "b1")
	require.Error(t, err)

	_, err = svc.MyLoans(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stub.myLoansHits)
}

func TestReturnBook(t *testing.T) {
	svc, _, _ := newTestService(&stubLoanAPI{})

	loan, err := svc.ReturnBook(context.Background(), "l1")
	require.NoError(t, err)
	assert.Equal(t, catalog.LoanReturned, loan.Status)
}
