// internal/session/implementation.go
package session

import (
	"context"
	"fmt"

	"libraryfront/internal/api"
	"libraryfront/internal/catalog"
	"libraryfront/internal/query"
)

// User-scoped reads go stale the moment the signed-in identity changes; a
// returning different user must never see the previous account's data.
var userScopedKinds = []query.Kind{query.KindProfile, query.KindMyLoans, query.KindMyReviews}

// service implements the Service interface.
type service struct {
	store   *Store
	api     AuthAPI
	queries *query.Client
}

// NewService creates the auth service around an existing session store and
// the shared query client. The user-scoped cache flush is registered as a
// logout hook so it runs on every logout, forced (401) ones included, not
// just the ones that come through this service.
func NewService(store *Store, authAPI AuthAPI, queries *query.Client) Service {
	store.OnLogout(func() { queries.Invalidate(userScopedKinds...) })
	return &service{store: store, api: authAPI, queries: queries}
}

// Login exchanges credentials for a token and establishes the session.
func (s *service) Login(ctx context.Context, email, password string) (catalog.User, error) {
	res, err := s.api.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return catalog.User{}, err
	}
	if err := s.store.SetCredentials(res.Token, res.User); err != nil {
		return catalog.User{}, fmt.Errorf("failed to persist session: %w", err)
	}
	s.queries.Invalidate(userScopedKinds...)
	return res.User, nil
}

// Register creates an account and establishes the session in one step.
func (s *service) Register(ctx context.Context, name, email, password string) (catalog.User, error) {
	res, err := s.api.Register(ctx, api.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return catalog.User{}, err
	}
	if err := s.store.SetCredentials(res.Token, res.User); err != nil {
		return catalog.User{}, fmt.Errorf("failed to persist session: %w", err)
	}
	s.queries.Invalidate(userScopedKinds...)
	return res.User, nil
}

// RefreshProfile re-establishes the cached user for a persisted token, e.g.
// after an application restart where only the token survived.
func (s *service) RefreshProfile(ctx context.Context) (catalog.User, error) {
	res, err := s.queries.Query(ctx, query.NewKey(query.KindProfile, nil), func(ctx context.Context) (any, error) {
		return s.api.Profile(ctx)
	})
	if err != nil {
		return catalog.User{}, err
	}
	user := res.(catalog.User)
	s.store.SetUser(user)
	return user, nil
}

// UpdateProfile edits the account and refreshes the cached user.
func (s *service) UpdateProfile(ctx context.Context, input api.ProfileInput) (catalog.User, error) {
	res, err := s.queries.Mutate(ctx, func(ctx context.Context) (any, error) {
		return s.api.UpdateProfile(ctx, input)
	}, query.KindProfile)
	if err != nil {
		return catalog.User{}, err
	}
	user := res.(catalog.User)
	s.store.SetUser(user)
	return user, nil
}

// Logout clears the session; the logout hook flushes the signed-out
// user's cached reads.
func (s *service) Logout() error {
	return s.store.Logout()
}
