// internal/api/profile.go
package api

import (
	"context"
	"net/http"

	"libraryfront/internal/catalog"
)

// ProfileInput is the payload for updating the signed-in user's profile.
type ProfileInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (c *Client) Profile(ctx context.Context) (catalog.User, error) {
	var user catalog.User
	err := c.get(ctx, "/api/profile", nil, &user)
	return user, err
}

func (c *Client) UpdateProfile(ctx context.Context, input ProfileInput) (catalog.User, error) {
	var user catalog.User
	err := c.send(ctx, http.MethodPut, "/api/profile", input, &user)
	return user, err
}
