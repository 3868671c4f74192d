// internal/catalog/domain_test.go
package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefDecodesInlineString(t *testing.T) {
	var b Book
	require.NoError(t, json.Unmarshal([]byte(`{"id":"b1","title":"Dune","author":"Frank Herbert","category":"Fantasy","stock":2}`), &b))

	assert.Equal(t, "Frank Herbert", b.Author.Name)
	assert.False(t, b.Author.IsReference())
	assert.Equal(t, "Fantasy", b.Category.Name)
}

func TestRefDecodesObject(t *testing.T) {
	var b Book
	require.NoError(t, json.Unmarshal([]byte(`{"id":"b1","title":"Dune","author":{"id":"a9","name":"Frank Herbert"},"category":{"name":"Fantasy"},"stock":2}`), &b))

	assert.True(t, b.Author.IsReference())
	assert.Equal(t, "a9", b.Author.ID)
	assert.Equal(t, "Frank Herbert", b.Author.Name)
	assert.False(t, b.Category.IsReference())
	assert.Equal(t, "Fantasy", b.Category.Name)
}

func TestRefDecodesNull(t *testing.T) {
	var b Book
	require.NoError(t, json.Unmarshal([]byte(`{"id":"b1","title":"Dune","author":null,"stock":0}`), &b))
	assert.Equal(t, Ref{}, b.Author)
}

func TestRefMarshalRoundTrip(t *testing.T) {
	for _, ref := range []Ref{{Name: "Jane Austen"}, {ID: "a1", Name: "Jane Austen"}} {
		raw, err := json.Marshal(ref)
		require.NoError(t, err)

		var got Ref
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, ref, got)
	}
}
