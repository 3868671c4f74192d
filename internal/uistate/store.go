// internal/uistate/store.go
package uistate

import "sync"

// Filters is a snapshot of the transient browse state. An empty search
// query and an empty category both mean "no filter applied".
type Filters struct {
	SearchQuery      string
	SelectedCategory string
	SearchOpen       bool
	CurrentPage      int
}

// Store holds transient UI state: search text, selected category, the
// search panel flag and the pagination cursor. No persistence guarantee.
type Store struct {
	mu      sync.Mutex
	filters Filters
}

func NewStore() *Store {
	return &Store{filters: Filters{CurrentPage: 1}}
}

func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.SearchQuery = query
}

func (s *Store) SetSelectedCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.SelectedCategory = category
}

func (s *Store) SetSearchOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.SearchOpen = open
}

// SetCurrentPage moves the pagination cursor, clamped to page 1.
func (s *Store) SetCurrentPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = 1
	}
	s.filters.CurrentPage = page
}

// ResetFilters restores the search query, category and page to their
// initial values. The search panel flag is left untouched.
func (s *Store) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.SearchQuery = ""
	s.filters.SelectedCategory = ""
	s.filters.CurrentPage = 1
}

// Filters returns a snapshot of the current state.
func (s *Store) Filters() Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}
