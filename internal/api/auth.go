// internal/api/auth.go
package api

import (
	"context"
	"net/http"

	"libraryfront/internal/catalog"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is the payload of a successful login or registration.
type AuthResult struct {
	Token string       `json:"token"`
	User  catalog.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (AuthResult, error) {
	var res AuthResult
	err := c.send(ctx, http.MethodPost, "/api/auth/login", req, &res)
	return res, err
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (AuthResult, error) {
	var res AuthResult
	err := c.send(ctx, http.MethodPost, "/api/auth/register", req, &res)
	return res, err
}
