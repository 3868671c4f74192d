// internal/api/books.go
package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"libraryfront/internal/catalog"
)

// BookListParams narrows a book listing. Zero values mean "no filter".
type BookListParams struct {
	Page     int
	Limit    int
	Category string
	Author   string
	Search   string
}

// Values encodes the params the way the books endpoint expects them.
func (p BookListParams) Values() url.Values {
	values := url.Values{}
	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Category != "" {
		values.Set("category", p.Category)
	}
	if p.Author != "" {
		values.Set("author", p.Author)
	}
	if p.Search != "" {
		values.Set("search", p.Search)
	}
	return values
}

// BookList is one page of a book listing.
type BookList struct {
	Books []catalog.Book `json:"books"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// BookInput is the payload for creating or updating a book.
type BookInput struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	Category      string `json:"category"`
	CoverImage    string `json:"cover_image,omitempty"`
	Description   string `json:"description,omitempty"`
	Stock         int    `json:"stock"`
	ISBN          string `json:"isbn,omitempty"`
	PublishedYear int    `json:"published_year,omitempty"`
}

func (c *Client) ListBooks(ctx context.Context, params BookListParams) (BookList, error) {
	var list BookList
	err := c.get(ctx, "/api/books", params.Values(), &list)
	return list, err
}

func (c *Client) GetBook(ctx context.Context, id string) (catalog.Book, error) {
	var book catalog.Book
	err := c.get(ctx, "/api/books/"+id, nil, &book)
	return book, err
}

// RecommendedBooks fetches the recommendation shelf. recType is "rating" or
// "popular"; empty defaults to "rating".
func (c *Client) RecommendedBooks(ctx context.Context, recType string) ([]catalog.Book, error) {
	if recType == "" {
		recType = "rating"
	}
	var books []catalog.Book
	err := c.get(ctx, "/api/books/recommend", url.Values{"type": {recType}}, &books)
	return books, err
}

func (c *Client) CreateBook(ctx context.Context, input BookInput) (catalog.Book, error) {
	var book catalog.Book
	err := c.send(ctx, http.MethodPost, "/api/books", input, &book)
	return book, err
}

func (c *Client) UpdateBook(ctx context.Context, id string, input BookInput) (catalog.Book, error) {
	var book catalog.Book
	err := c.send(ctx, http.MethodPut, "/api/books/"+id, input, &book)
	return book, err
}

func (c *Client) DeleteBook(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/api/books/"+id, nil, nil)
}
