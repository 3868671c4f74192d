// internal/cart/store_test.go
package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"libraryfront/internal/catalog"
)

func TestAddRejectsDuplicateID(t *testing.T) {
	store := NewStore()

	assert.True(t, store.Add(Item{ID: "b1", Title: "Dune", Stock: 3}))
	assert.False(t, store.Add(Item{ID: "b1", Title: "Dune", Stock: 3}))

	require.Equal(t, 1, store.Len())
	assert.Equal(t, "b1", store.Items()[0].ID)

	store.Remove("b1")
	assert.Equal(t, 0, store.Len())

	// removing again is a no-op, not an error
	store.Remove("b1")
	assert.Equal(t, 0, store.Len())
}

func TestAddRejectsOutOfStock(t *testing.T) {
	store := NewStore()

	assert.False(t, store.Add(Item{ID: "b1", Stock: 0}))
	assert.False(t, store.Add(Item{ID: "b2", Stock: -1}))
	assert.Equal(t, 0, store.Len())
}

func TestInsertionOrderPreserved(t *testing.T) {
	store := NewStore()
	store.Add(Item{ID: "b3", Stock: 1})
	store.Add(Item{ID: "b1", Stock: 1})
	store.Add(Item{ID: "b2", Stock: 1})
	store.Remove("b1")

	assert.Equal(t, []string{"b3", "b2"}, store.IDs())
}

func TestClear(t *testing.T) {
	store := NewStore()
	store.Add(Item{ID: "b1", Stock: 1})
	store.Add(Item{ID: "b2", Stock: 1})
	store.Clear()

	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.IDs())
}

func TestToggleAndSetOpen(t *testing.T) {
	store := NewStore()
	assert.False(t, store.IsOpen())

	store.Toggle()
	assert.True(t, store.IsOpen())
	store.Toggle()
	assert.False(t, store.IsOpen())

	store.SetOpen(true)
	assert.True(t, store.IsOpen())

	// display flag has no data effect
	store.Add(Item{ID: "b1", Stock: 1})
	store.SetOpen(false)
	assert.Equal(t, 1, store.Len())
}

func TestItemFromBookFlattensRefs(t *testing.T) {
	item := ItemFromBook(catalog.Book{
		ID:       "b1",
		Title:    "Dune",
		Author:   catalog.Ref{ID: "a1", Name: "Frank Herbert"},
		Category: catalog.Ref{Name: "Fantasy"},
		Stock:    4,
	})

	assert.Equal(t, "Frank Herbert", item.Author)
	assert.Equal(t, "Fantasy", item.Category)
	assert.Equal(t, 4, item.Stock)
}

// For any sequence of adds and removes the cart holds at most one item per
// ID, and never an item that was out of stock at add time.
func TestCartInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		store := NewStore()
		ids := []string{"b1", "b2", "b3", "b4", "b5"}

		t.Repeat(map[string]func(*rapid.T){
			"add": func(t *rapid.T) {
				store.Add(Item{
					ID:    rapid.SampledFrom(ids).Draw(t, "id"),
					Stock: rapid.IntRange(0, 3).Draw(t, "stock"),
				})
			},
			"remove": func(t *rapid.T) {
				store.Remove(rapid.SampledFrom(ids).Draw(t, "id"))
			},
			"clear": func(t *rapid.T) {
				store.Clear()
			},
			"": func(t *rapid.T) {
				seen := make(map[string]bool)
				for _, item := range store.Items() {
					if seen[item.ID] {
						t.Fatalf("duplicate cart item %q", item.ID)
					}
					seen[item.ID] = true
					if item.Stock <= 0 {
						t.Fatalf("out-of-stock item %q in cart", item.ID)
					}
				}
			},
		})
	})
}
