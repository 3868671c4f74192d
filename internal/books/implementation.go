// internal/books/implementation.go
package books

import (
	"context"
	"strconv"

	"libraryfront/internal/api"
	"libraryfront/internal/catalog"
	"libraryfront/internal/placeholder"
	"libraryfront/internal/query"
	"libraryfront/internal/uistate"
)

const defaultPageSize = 20

// service implements the Service interface.
type service struct {
	api     BooksAPI
	queries *query.Client
}

// NewService creates a browse service around the shared query client.
func NewService(booksAPI BooksAPI, queries *query.Client) Service {
	return &service{api: booksAPI, queries: queries}
}

// ParamsFromFilters translates the filter store's snapshot into listing
// parameters.
func ParamsFromFilters(filters uistate.Filters, limit int) api.BookListParams {
	if limit <= 0 {
		limit = defaultPageSize
	}
	return api.BookListParams{
		Page:     filters.CurrentPage,
		Limit:    limit,
		Category: filters.SelectedCategory,
		Search:   filters.SearchQuery,
	}
}

func listKey(params api.BookListParams) query.Key {
	keyParams := map[string]string{}
	if params.Page > 0 {
		keyParams["page"] = strconv.Itoa(params.Page)
	}
	if params.Limit > 0 {
		keyParams["limit"] = strconv.Itoa(params.Limit)
	}
	if params.Category != "" {
		keyParams["category"] = params.Category
	}
	if params.Author != "" {
		keyParams["author"] = params.Author
	}
	if params.Search != "" {
		keyParams["search"] = params.Search
	}
	return query.NewKey(query.KindBooks, keyParams)
}

// Browse lists one page of the catalog, falling back to placeholder books
// when the read fails or comes back empty.
func (s *service) Browse(ctx context.Context, params api.BookListParams) []catalog.Book {
	res, err := s.queries.Query(ctx, listKey(params), func(ctx context.Context) (any, error) {
		return s.api.ListBooks(ctx, params)
	})
	if err == nil {
		if list := res.(api.BookList); len(list.Books) > 0 {
			return list.Books
		}
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	start := 0
	if params.Page > 1 {
		start = (params.Page - 1) * limit
	}
	return placeholder.Books(limit, start)
}

// Detail fetches a single book. Details are refetched on every read and
// errors surface to the caller; there is no placeholder stand-in for a
// specific book.
func (s *service) Detail(ctx context.Context, id string) (catalog.Book, error) {
	res, err := s.queries.Query(ctx, query.NewKey(query.KindBook, map[string]string{"id": id}), func(ctx context.Context) (any, error) {
		return s.api.GetBook(ctx, id)
	})
	if err != nil {
		return catalog.Book{}, err
	}
	return res.(catalog.Book), nil
}

// Recommended lists the recommendation shelf with placeholder fallback.
func (s *service) Recommended(ctx context.Context, recType string) []catalog.Book {
	if recType == "" {
		recType = "rating"
	}
	res, err := s.queries.Query(ctx, query.NewKey(query.KindRecommendedBooks, map[string]string{"type": recType}), func(ctx context.Context) (any, error) {
		return s.api.RecommendedBooks(ctx, recType)
	})
	if err == nil {
		if recommended := res.([]catalog.Book); len(recommended) > 0 {
			return recommended
		}
	}
	return placeholder.Books(10, 0)
}

// Authors lists authors with placeholder fallback.
func (s *service) Authors(ctx context.Context) []catalog.Author {
	res, err := s.queries.Query(ctx, query.NewKey(query.KindAuthors, nil), func(ctx context.Context) (any, error) {
		return s.api.ListAuthors(ctx)
	})
	if err == nil {
		if authors := res.([]catalog.Author); len(authors) > 0 {
			return authors
		}
	}
	return placeholder.Authors(20)
}

// AuthorBooks lists one author's books. Like Detail, this backs a specific
// record's page, so errors surface instead of placeholder content.
func (s *service) AuthorBooks(ctx context.Context, id string) ([]catalog.Book, error) {
	res, err := s.queries.Query(ctx, query.NewKey(query.KindAuthorBooks, map[string]string{"author": id}), func(ctx context.Context) (any, error) {
		return s.api.AuthorBooks(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return res.([]catalog.Book), nil
}

// Categories lists categories with placeholder fallback.
func (s *service) Categories(ctx context.Context) []catalog.Category {
	res, err := s.queries.Query(ctx, query.NewKey(query.KindCategories, nil), func(ctx context.Context) (any, error) {
		return s.api.ListCategories(ctx)
	})
	if err == nil {
		if cats := res.([]catalog.Category); len(cats) > 0 {
			return cats
		}
	}
	return placeholder.Categories()
}

// CreateBook adds a catalog entry and invalidates the book listings.
func (s *service) CreateBook(ctx context.Context, input api.BookInput) (catalog.Book, error) {
	res, err := s.queries.Mutate(ctx, func(ctx context.Context) (any, error) {
		return s.api.CreateBook(ctx, input)
	}, query.KindBooks, query.KindRecommendedBooks)
	if err != nil {
		return catalog.Book{}, err
	}
	return res.(catalog.Book), nil
}

// UpdateBook edits a catalog entry; the detail cache goes stale too.
func (s *service) UpdateBook(ctx context.Context, id string, input api.BookInput) (catalog.Book, error) {
	res, err := s.queries.Mutate(ctx, func(ctx context.Context) (any, error) {
		return s.api.UpdateBook(ctx, id, input)
	}, query.KindBooks, query.KindBook, query.KindRecommendedBooks)
	if err != nil {
		return catalog.Book{}, err
	}
	return res.(catalog.Book), nil
}

// DeleteBook removes a catalog entry and invalidates the listings.
func (s *service) DeleteBook(ctx context.Context, id string) error {
	_, err := s.queries.Mutate(ctx, func(ctx context.Context) (any, error) {
		return nil, s.api.DeleteBook(ctx, id)
	}, query.KindBooks, query.KindBook, query.KindRecommendedBooks)
	return err
}
