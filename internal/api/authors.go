// internal/api/authors.go
package api

import (
	"context"
	"net/http"

	"libraryfront/internal/catalog"
)

// AuthorInput is the payload for creating or updating an author.
type AuthorInput struct {
	Name        string `json:"name"`
	Bio         string `json:"bio,omitempty"`
	Nationality string `json:"nationality,omitempty"`
}

func (c *Client) ListAuthors(ctx context.Context) ([]catalog.Author, error) {
	var authors []catalog.Author
	err := c.get(ctx, "/api/authors", nil, &authors)
	return authors, err
}

func (c *Client) AuthorBooks(ctx context.Context, id string) ([]catalog.Book, error) {
	var books []catalog.Book
	err := c.get(ctx, "/api/authors/"+id+"/books", nil, &books)
	return books, err
}

func (c *Client) CreateAuthor(ctx context.Context, input AuthorInput) (catalog.Author, error) {
	var author catalog.Author
	err := c.send(ctx, http.MethodPost, "/api/authors", input, &author)
	return author, err
}

func (c *Client) UpdateAuthor(ctx context.Context, id string, input AuthorInput) (catalog.Author, error) {
	var author catalog.Author
	err := c.send(ctx, http.MethodPut, "/api/authors/"+id, input, &author)
	return author, err
}

func (c *Client) DeleteAuthor(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/api/authors/"+id, nil, nil)
}
