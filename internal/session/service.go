// internal/session/service.go
package session

import (
	"context"

	"libraryfront/internal/api"
	"libraryfront/internal/catalog"
)

// AuthAPI is the slice of the REST client the session service needs.
type AuthAPI interface {
	Login(ctx context.Context, req api.LoginRequest) (api.AuthResult, error)
	Register(ctx context.Context, req api.RegisterRequest) (api.AuthResult, error)
	Profile(ctx context.Context) (catalog.User, error)
	UpdateProfile(ctx context.Context, input api.ProfileInput) (catalog.User, error)
}

// Service defines the authentication and profile workflows around the
// session store.
type Service interface {
	Login(ctx context.Context, email, password string) (catalog.User, error)
	Register(ctx context.Context, name, email, password string) (catalog.User, error)
	RefreshProfile(ctx context.Context) (catalog.User, error)
	UpdateProfile(ctx context.Context, input api.ProfileInput) (catalog.User, error)
	Logout() error
}
