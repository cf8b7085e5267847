package bitstore

import (
	"context"
	"sync"

	bitvec "github.com/nic-obert/bitvec-padded"
	"golang.org/x/sync/errgroup"
)

// CachedStore wraps an inner Store with a read-through cache of serialized
// sequences. Put and Delete write through and invalidate the cached entry.
//
// The cache holds wire bytes rather than decoded sequences, so every Get
// still returns a freshly owned Sequence.
type CachedStore struct {
	inner Store

	mu    sync.RWMutex
	cache map[string][]byte
}

// NewCachedStore creates a CachedStore over inner.
func NewCachedStore(inner Store) *CachedStore {
	return &CachedStore{
		inner: inner,
		cache: make(map[string][]byte),
	}
}

// Put writes through to the inner store and caches the serialized form.
func (c *CachedStore) Put(ctx context.Context, name string, seq *bitvec.Sequence) error {
	if err := c.inner.Put(ctx, name, seq); err != nil {
		return err
	}

	c.mu.Lock()
	c.cache[name] = seq.AppendTo(nil)
	c.mu.Unlock()
	return nil
}

// Get returns the cached sequence if present, otherwise loads it from the
// inner store and caches it.
func (c *CachedStore) Get(ctx context.Context, name string) (*bitvec.Sequence, error) {
	c.mu.RLock()
	data, ok := c.cache[name]
	c.mu.RUnlock()

	if ok {
		return bitvec.Deserialize(data)
	}

	seq, err := c.inner.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[name] = seq.AppendTo(nil)
	c.mu.Unlock()
	return seq, nil
}

// GetMany loads several sequences, fetching cache misses from the inner
// store concurrently. The result is ordered like names. Missing names fail
// the whole call with ErrNotFound.
func (c *CachedStore) GetMany(ctx context.Context, names []string) ([]*bitvec.Sequence, error) {
	out := make([]*bitvec.Sequence, len(names))

	g, ctx := errgroup.WithContext(ctx)
	// Bound the fan-out so a large miss set cannot exhaust the backend.
	g.SetLimit(16)

	for i, name := range names {
		g.Go(func() error {
			seq, err := c.Get(ctx, name)
			if err != nil {
				return err
			}
			out[i] = seq
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the sequence from the inner store and drops the cached
// entry.
func (c *CachedStore) Delete(ctx context.Context, name string) error {
	if err := c.inner.Delete(ctx, name); err != nil {
		return err
	}

	c.mu.Lock()
	delete(c.cache, name)
	c.mu.Unlock()
	return nil
}

// List delegates to the inner store.
func (c *CachedStore) List(ctx context.Context, prefix string) ([]string, error) {
	return c.inner.List(ctx, prefix)
}
