// internal/query/client.go
package query

import (
	"context"
	"sync"
	"time"
)

// DefaultWindow is the staleness window applied to kinds without an
// explicit one.
const DefaultWindow = 5 * time.Minute

// FetchFunc loads the data for one key from the server.
type FetchFunc func(ctx context.Context) (any, error)

// MutateFunc performs one write against the server. It is executed exactly
// once; mutations carry no idempotency keys, so replaying them is unsafe.
type MutateFunc func(ctx context.Context) (any, error)

type entry struct {
	kind      Kind
	data      any
	fetchedAt time.Time
}

type call struct {
	id   string
	kind Kind
	gen  uint64
	done chan struct{}
	data any
	err  error
}

// Client is the single point of truth for server-resource reads and
// writes. Reads are cached per key with per-kind staleness windows and
// stale-while-revalidate semantics; concurrent identical reads share one
// network request; writes invalidate every cached read of the affected
// kinds.
type Client struct {
	mu       sync.Mutex
	entries  map[string]entry
	inflight map[string]*call
	gens     map[string]uint64

	windows       map[Kind]time.Duration
	defaultWindow time.Duration
	now           func() time.Time
}

// Options configures a Client.
type Options struct {
	// Windows overrides the staleness window per kind. A zero window means
	// the kind is never served from cache (refetched on every read).
	Windows map[Kind]time.Duration
	// DefaultWindow applies to kinds absent from Windows.
	DefaultWindow time.Duration
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// NewClient creates a query client with the standard staleness windows:
// book listings 5m, recommendations 10m, my-loans 2m, book detail always
// refetched.
func NewClient(opts Options) *Client {
	windows := map[Kind]time.Duration{
		KindBooks:            5 * time.Minute,
		KindRecommendedBooks: 10 * time.Minute,
		KindMyLoans:          2 * time.Minute,
		KindBook:             0,
	}
	for kind, window := range opts.Windows {
		windows[kind] = window
	}
	defaultWindow := opts.DefaultWindow
	if defaultWindow == 0 {
		defaultWindow = DefaultWindow
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Client{
		entries:       make(map[string]entry),
		inflight:      make(map[string]*call),
		gens:          make(map[string]uint64),
		windows:       windows,
		defaultWindow: defaultWindow,
		now:           now,
	}
}

func (c *Client) window(kind Kind) time.Duration {
	if window, ok := c.windows[kind]; ok {
		return window
	}
	return c.defaultWindow
}

// Query returns the data for key. A fresh cached value is returned without
// a network round-trip. A stale cached value is returned immediately while
// a background refresh revalidates it. On a miss, exactly one fetch is
// issued per key no matter how many callers arrive concurrently; all of
// them observe the same result. Errors are surfaced and never cached.
func (c *Client) Query(ctx context.Context, key Key, fetch FetchFunc) (any, error) {
	id := key.String()
	window := c.window(key.Kind())

	c.mu.Lock()
	if e, ok := c.entries[id]; ok && window > 0 {
		if c.now().Sub(e.fetchedAt) < window {
			data := e.data
			c.mu.Unlock()
			return data, nil
		}
		// Stale-while-revalidate: kick off one refresh, serve the stale
		// value without waiting. The refresh outlives this caller.
		if _, running := c.inflight[id]; !running {
			cl := c.register(id, key.Kind())
			go c.settle(context.WithoutCancel(ctx), cl, fetch)
		}
		data := e.data
		c.mu.Unlock()
		return data, nil
	}

	if cl, running := c.inflight[id]; running {
		c.mu.Unlock()
		select {
		case <-cl.done:
			return cl.data, cl.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	cl := c.register(id, key.Kind())
	c.mu.Unlock()
	c.settle(ctx, cl, fetch)
	return cl.data, cl.err
}

// Mutate performs fn exactly once, with no retry. On success every cached
// read of the listed kinds is invalidated so the next read re-fetches. On
// failure the cache is untouched and the error is surfaced verbatim.
func (c *Client) Mutate(ctx context.Context, fn MutateFunc, invalidates ...Kind) (any, error) {
	data, err := fn(ctx)
	if err != nil {
		return nil, err
	}
	c.Invalidate(invalidates...)
	return data, nil
}

// Invalidate drops every cached read of the given kinds and supersedes any
// in-flight fetch for them, so a late response cannot repopulate the cache
// with pre-mutation data.
func (c *Client) Invalidate(kinds ...Kind) {
	if len(kinds) == 0 {
		return
	}
	affected := make(map[Kind]bool, len(kinds))
	for _, kind := range kinds {
		affected[kind] = true
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for id, e := range c.entries {
		if affected[e.kind] {
			delete(c.entries, id)
		}
	}
	for id, cl := range c.inflight {
		if affected[cl.kind] {
			c.gens[id]++
		}
	}
}

// register records a new in-flight fetch for id. Caller holds c.mu.
func (c *Client) register(id string, kind Kind) *call {
	c.gens[id]++
	cl := &call{id: id, kind: kind, gen: c.gens[id], done: make(chan struct{})}
	c.inflight[id] = cl
	return cl
}

// settle runs the fetch, publishes the result to every waiter, and caches
// it only if the fetch is still the latest issued for its key. A fetch
// superseded by an invalidation (or a newer fetch) is discarded on
// arrival.
func (c *Client) settle(ctx context.Context, cl *call, fetch FetchFunc) {
	data, err := fetch(ctx)

	c.mu.Lock()
	if c.inflight[cl.id] == cl {
		delete(c.inflight, cl.id)
	}
	if err == nil && c.gens[cl.id] == cl.gen {
		c.entries[cl.id] = entry{kind: cl.kind, data: data, fetchedAt: c.now()}
	}
	// The counter only guards against in-flight fetches; once none remain
	// for this key it would just accumulate, so drop it.
	if _, running := c.inflight[cl.id]; !running {
		delete(c.gens, cl.id)
	}
	c.mu.Unlock()

	cl.data, cl.err = data, err
	close(cl.done)
}
