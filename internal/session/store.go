// internal/session/store.go
package session

import (
	"sync"

	"libraryfront/internal/catalog"
)

// Store holds the auth token and the cached profile of the signed-in user.
// The token owns the authenticated fact; the user record is redundant
// display info re-established by a profile fetch after a token-only start.
//
// A freshly constructed store may hold a persisted token while the user is
// still unset. Callers must tolerate that window: IsAuthenticated stays
// false until both are present.
type Store struct {
	mu       sync.RWMutex
	token    string
	user     *catalog.User
	storage  TokenStorage
	onLogout []func()
}

// NewStore creates a session store backed by storage, loading any token
// persisted by a previous run.
func NewStore(storage TokenStorage) (*Store, error) {
	token, err := storage.Load()
	if err != nil {
		return nil, err
	}
	return &Store{token: token, storage: storage}, nil
}

// OnLogout registers a hook invoked after every logout, explicit or forced.
// The client-side redirect to the login entry point hangs off this hook.
func (s *Store) OnLogout(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = append(s.onLogout, fn)
}

// SetCredentials sets the session fields and persists the token. It
// overwrites any previous session.
func (s *Store) SetCredentials(token string, user catalog.User) error {
	s.mu.Lock()
	s.token = token
	s.user = &user
	s.mu.Unlock()
	return s.storage.Store(token)
}

// SetUser caches the profile for an already-held token, typically after the
// startup profile fetch. No-op when no token is held.
func (s *Store) SetUser(user catalog.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return
	}
	s.user = &user
}

// Logout clears the session and the persisted token, then runs the logout
// hooks. Idempotent.
func (s *Store) Logout() error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	hooks := make([]func(), len(s.onLogout))
	copy(hooks, s.onLogout)
	s.mu.Unlock()

	err := s.storage.Clear()
	for _, fn := range hooks {
		fn()
	}
	return err
}

// Token returns the current auth token, empty when signed out. It satisfies
// the API client's token source.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the cached profile and whether one is set.
func (s *Store) User() (catalog.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return catalog.User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether both the token and the user profile are
// present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}
