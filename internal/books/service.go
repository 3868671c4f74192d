// internal/books/service.go
package books

import (
	"context"

	"libraryfront/internal/api"
	"libraryfront/internal/catalog"
)

// BooksAPI is the slice of the REST client the browse workflows need.
type BooksAPI interface {
	ListBooks(ctx context.Context, params api.BookListParams) (api.BookList, error)
	GetBook(ctx context.Context, id string) (catalog.Book, error)
	RecommendedBooks(ctx context.Context, recType string) ([]catalog.Book, error)
	ListAuthors(ctx context.Context) ([]catalog.Author, error)
	AuthorBooks(ctx context.Context, id string) ([]catalog.Book, error)
	ListCategories(ctx context.Context) ([]catalog.Category, error)
	CreateBook(ctx context.Context, input api.BookInput) (catalog.Book, error)
	UpdateBook(ctx context.Context, id string, input api.BookInput) (catalog.Book, error)
	DeleteBook(ctx context.Context, id string) error
}

// Service exposes the catalog browse and admin workflows. Listing reads
// never fail outright: when the API is unreachable or returns nothing,
// placeholder content stands in so the UI always shows something.
type Service interface {
	Browse(ctx context.Context, params api.BookListParams) []catalog.Book
	Detail(ctx context.Context, id string) (catalog.Book, error)
	Recommended(ctx context.Context, recType string) []catalog.Book
	Authors(ctx context.Context) []catalog.Author
	AuthorBooks(ctx context.Context, id string) ([]catalog.Book, error)
	Categories(ctx context.Context) []catalog.Category
	CreateBook(ctx context.Context, input api.BookInput) (catalog.Book, error)
	UpdateBook(ctx context.Context, id string, input api.BookInput) (catalog.Book, error)
	DeleteBook(ctx context.Context, id string) error
}
