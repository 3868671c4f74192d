// internal/cart/store.go
package cart

import (
	"sync"

	"libraryfront/internal/catalog"
)

// Item is the normalized book reference held in the cart. Author and
// category are flattened to display strings at add time.
type Item struct {
	ID         string
	Title      string
	Author     string
	Category   string
	CoverImage string
	Stock      int
}

// ItemFromBook flattens a catalog book into a cart item.
func ItemFromBook(book catalog.Book) Item {
	return Item{
		ID:         book.ID,
		Title:      book.Title,
		Author:     book.Author.Name,
		Category:   book.Category.Name,
		CoverImage: book.CoverImage,
		Stock:      book.Stock,
	}
}

// Store holds the books a member intends to borrow in one batch. Items are
// unique by ID and keep insertion order. The cart never reserves stock;
// stock can change server-side before checkout. Session-scoped only, not
// persisted across restarts.
type Store struct {
	mu    sync.Mutex
	items []Item
	open  bool
}

func NewStore() *Store { return &Store{} }

// Add appends the item unless one with the same ID is already present or
// the item is out of stock. Reports whether the cart changed.
func (s *Store) Add(item Item) bool {
	if item.Stock <= 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.items {
		if existing.ID == item.ID {
			return false
		}
	}
	s.items = append(s.items, item)
	return true
}

// Remove drops the item with the given ID. Removing an absent ID is a
// no-op, not an error.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Toggle flips the open/closed display flag.
func (s *Store) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = !s.open
}

// SetOpen sets the open/closed display flag.
func (s *Store) SetOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = open
}

func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Items returns a copy of the cart contents in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// IDs returns the book IDs in insertion order. Batch-borrow reads this
// snapshot at call time.
func (s *Store) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, len(s.items))
	for i, item := range s.items {
		ids[i] = item.ID
	}
	return ids
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
