package preview

import (
	"context"
	"time"

	"github.com/dmitrymomot/mailforge/pkg/cache"
)

// MemoryStore keeps documents in a process-local LRU.
type MemoryStore struct {
	lru *cache.LRU[string, Document]
	now func() time.Time
}

type MemoryOption func(*memoryOptions)

type memoryOptions struct {
	now func() time.Time
}

// WithMemoryClock replaces time.Now for expiry and CreatedAt.
func WithMemoryClock(now func() time.Time) MemoryOption {
	return func(o *memoryOptions) { o.now = now }
}

// NewMemoryStore creates a store holding at most cfg.Capacity documents,
// 256 when unset.
func NewMemoryStore(cfg Config, opts ...MemoryOption) *MemoryStore {
	if cfg.Capacity <= 0 {
		cfg.Capacity = 256
	}
	o := memoryOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &MemoryStore{
		lru: cache.New(cfg.Capacity, cfg.TTL, cache.WithClock[string, Document](o.now)),
		now: o.now,
	}
}

func (s *MemoryStore) Save(ctx context.Context, doc Document) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	doc = prepare(doc, s.now())
	s.lru.Set(doc.ID, doc)
	return doc, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	if err := checkID(id); err != nil {
		return Document{}, err
	}
	doc, ok := s.lru.Get(id)
	if !ok {
		return Document{}, ErrNotFound
	}
	return doc, nil
}

// Len returns the number of live documents after dropping expired ones.
func (s *MemoryStore) Len() int {
	s.lru.PurgeExpired()
	return s.lru.Len()
}
