// internal/query/keys.go
package query

import (
	"sort"
	"strings"
)

// Kind is the logical category of server data a cached read belongs to.
// Invalidation after a mutation is scoped by kind.
type Kind string

const (
	KindBooks            Kind = "books"
	KindBook             Kind = "book"
	KindRecommendedBooks Kind = "recommended-books"
	KindAuthors          Kind = "authors"
	KindAuthorBooks      Kind = "author-books"
	KindCategories       Kind = "categories"
	KindMyLoans          Kind = "my-loans"
	KindProfile          Kind = "profile"
	KindBookReviews      Kind = "book-reviews"
	KindMyReviews        Kind = "my-reviews"
	KindOverdueLoans     Kind = "admin-overdue-loans"
	KindAdminOverview    Kind = "admin-overview"
)

// Key identifies a cached read: a resource kind plus the parameters that
// shaped the request.
type Key struct {
	kind   Kind
	params string
}

// NewKey builds a key from a kind and its request parameters. Parameters
// are canonicalized (sorted by name) so logically identical requests share
// one cache slot.
func NewKey(kind Kind, params map[string]string) Key {
	if len(params) == 0 {
		return Key{kind: kind}
	}
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for i, name := range names {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(params[name])
	}
	return Key{kind: kind, params: sb.String()}
}

// Kind returns the key's resource kind.
func (k Key) Kind() Kind { return k.kind }

// String renders the key's canonical identity.
func (k Key) String() string {
	if k.params == "" {
		return string(k.kind)
	}
	return string(k.kind) + "?" + k.params
}
