// internal/books/service_test.go
package books

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryfront/internal/api"
	"libraryfront/internal/catalog"
	"libraryfront/internal/query"
	"libraryfront/internal/uistate"
)

type stubBooksAPI struct {
	list     api.BookList
	listErr  error
	listHits int

	book    catalog.Book
	bookErr error

	recommended []catalog.Book
	authors     []catalog.Author
	categories  []catalog.Category

	created   catalog.Book
	createErr error
}

func (s *stubBooksAPI) ListBooks(ctx context.Context, params api.BookListParams) (api.BookList, error) {
	s.listHits++
	return s.list, s.listErr
}

func (s *stubBooksAPI) GetBook(ctx context.Context, id string) (catalog.Book, error) {
	return s.book, s.bookErr
}

func (s *stubBooksAPI) RecommendedBooks(ctx context.Context, recType string) ([]catalog.Book, error) {
	return s.recommended, nil
}

func (s *stubBooksAPI) ListAuthors(ctx context.Context) ([]catalog.Author, error) {
	return s.authors, nil
}

func (s *stubBooksAPI) AuthorBooks(ctx context.Context, id string) ([]catalog.Book, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.list.Books, nil
}

func (s *stubBooksAPI) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	return s.categories, nil
}

func (s *stubBooksAPI) CreateBook(ctx context.Context, input api.BookInput) (catalog.Book, error) {
	return s.created, s.createErr
}

func (s *stubBooksAPI) UpdateBook(ctx context.Context, id string, input api.BookInput) (catalog.Book, error) {
	return s.created, s.createErr
}

func (s *stubBooksAPI) DeleteBook(ctx context.Context, id string) error {
	return s.createErr
}

func TestBrowseReturnsServerBooks(t *testing.T) {
	stub := &stubBooksAPI{list: api.BookList{
		Books: []catalog.Book{{ID: "b1", Title: "Dune"}},
		Total: 1, Page: 1, Limit: 20,
	}}
	svc := NewService(stub, query.NewClient(query.Options{}))

	got := svc.Browse(context.Background(), api.BookListParams{Page: 1, Limit: 20})
	require.Len(t, got, 1)
	assert.Equal(t, "Dune", got[0].Title)
}

func TestBrowseFallsBackToPlaceholdersOnError(t *testing.T) {
	stub := &stubBooksAPI{listErr: errors.New("connection refused")}
	svc := NewService(stub, query.NewClient(query.Options{}))

	got := svc.Browse(context.Background(), api.BookListParams{Page: 1, Limit: 20})
	require.Len(t, got, 20)
	for _, b := range got {
		assert.True(t, strings.HasPrefix(b.ID, "placeholder-"))
	}
}

func TestBrowseFallsBackOnEmptyListing(t *testing.T) {
	stub := &stubBooksAPI{list: api.BookList{Page: 1, Limit: 20}}
	svc := NewService(stub, query.NewClient(query.Options{}))

	got := svc.Browse(context.Background(), api.BookListParams{Page: 1, Limit: 20})
	require.NotEmpty(t, got)
	assert.True(t, strings.HasPrefix(got[0].ID, "placeholder-"))
}

func TestBrowsePlaceholdersFollowPagination(t *testing.T) {
	stub := &stubBooksAPI{listErr: errors.New("down")}
	svc := NewService(stub, query.NewClient(query.Options{}))

	page1 := svc.Browse(context.Background(), api.BookListParams{Page: 1, Limit: 5})
	page2 := svc.Browse(context.Background(), api.BookListParams{Page: 2, Limit: 5})
	require.Len(t, page1, 5)
	require.Len(t, page2, 5)
	assert.Equal(t, "placeholder-1", page1[0].ID)
	assert.Equal(t, "placeholder-6", page2[0].ID)
}

func TestDetailSurfacesErrors(t *testing.T) {
	stub := &stubBooksAPI{bookErr: &api.Error{Status: 404, Message: "book not found"}}
	svc := NewService(stub, query.NewClient(query.Options{}))

	_, err := svc.Detail(context.Background(), "missing")
	require.Error(t, err)
	var apiErr *api.Error
	assert.True(t, errors.As(err, &apiErr))
}

func TestAuthorBooksSurfacesErrors(t *testing.T) {
	stub := &stubBooksAPI{listErr: errors.New("down")}
	svc := NewService(stub, query.NewClient(query.Options{}))

	_, err := svc.AuthorBooks(context.Background(), "a1")
	assert.Error(t, err)
}

func TestDistinctFilterCombinationsCachedSeparately(t *testing.T) {
	stub := &stubBooksAPI{list: api.BookList{
		Books: []catalog.Book{{ID: "b1", Title: "Dune"}},
	}}
	svc := NewService(stub, query.NewClient(query.Options{}))

	svc.Browse(context.Background(), api.BookListParams{Page: 1, Limit: 20})
	svc.Browse(context.Background(), api.BookListParams{Page: 1, Limit: 20})
	assert.Equal(t, 1, stub.listHits, "identical params must share one cache slot")

	svc.Browse(context.Background(), api.BookListParams{Page: 1, Limit: 20, Search: "dune"})
	svc.Browse(context.Background(), api.BookListParams{Page: 2, Limit: 20})
	assert.Equal(t, 3, stub.listHits, "page and search changes are new cache slots")
}

func TestCreateBookInvalidatesListings(t *testing.T) {
	stub := &stubBooksAPI{
		list:    api.BookList{Books: []catalog.Book{{ID: "b1", Title: "Dune"}}},
		created: catalog.Book{ID: "b2", Title: "Hyperion"},
	}
	svc := NewService(stub, query.NewClient(query.Options{}))

	svc.Browse(context.Background(), api.BookListParams{Page: 1, Limit: 20})
	require.Equal(t, 1, stub.listHits)

	created, err := svc.CreateBook(context.Background(), api.BookInput{Title: "Hyperion"})
	require.NoError(t, err)
	assert.Equal(t, "b2", created.ID)

	svc.Browse(context.Background(), api.BookListParams{Page: 1, Limit: 20})
	assert.Equal(t, 2, stub.listHits, "listing must re-fetch after a create")
}

func TestFailedCreateLeavesListingsCached(t *testing.T) {
	stub := &stubBooksAPI{
		list:      api.BookList{Books: []catalog.Book{{ID: "b1", Title: "Dune"}}},
		createErr: &api.Error{Status: 403, Message: "admin only"},
	}
	svc := NewService(stub, query.NewClient(query.Options{}))

	svc.Browse(context.Background(), api.BookListParams{Page: 1, Limit: 20})
	_, err := svc.CreateBook(context.Background(), api.BookInput{Title: "Hyperion"})
	require.Error(t, err)

	svc.Browse(context.Background(), api.BookListParams{Page: 1, Limit: 20})
	assert.Equal(t, 1, stub.listHits)
}

func TestParamsFromFilters(t *testing.T) {
	filters := uistate.Filters{SearchQuery: "dune", SelectedCategory: "Sci-Fi", CurrentPage: 3}

	params := ParamsFromFilters(filters, 0)
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 20, params.Limit)
	assert.Equal(t, "Sci-Fi", params.Category)
	assert.Equal(t, "dune", params.Search)

	params = ParamsFromFilters(filters, 12)
	assert.Equal(t, 12, params.Limit)
}
