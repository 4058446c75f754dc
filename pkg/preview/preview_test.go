package preview_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailforge/pkg/preview"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	t.Run("save assigns id and round trips", func(t *testing.T) {
		t.Parallel()

		store := preview.NewMemoryStore(preview.Config{TTL: time.Hour})
		saved, err := store.Save(context.Background(), preview.Document{Subject: "Spring sale", HTML: "<html></html>"})
		require.NoError(t, err)
		_, err = uuid.Parse(saved.ID)
		require.NoError(t, err)
		assert.False(t, saved.CreatedAt.IsZero())

		got, err := store.Get(context.Background(), saved.ID)
		require.NoError(t, err)
		assert.Equal(t, saved, got)
	})

	t.Run("unknown and invalid ids", func(t *testing.T) {
		t.Parallel()

		store := preview.NewMemoryStore(preview.Config{})
		_, err := store.Get(context.Background(), uuid.NewString())
		assert.ErrorIs(t, err, preview.ErrNotFound)
		_, err = store.Get(context.Background(), "../etc/passwd")
		assert.ErrorIs(t, err, preview.ErrInvalidID)
	})

	t.Run("documents expire", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
		var mu sync.Mutex
		clock := func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			return now
		}
		store := preview.NewMemoryStore(preview.Config{TTL: time.Minute}, preview.WithMemoryClock(clock))

		saved, err := store.Save(context.Background(), preview.Document{HTML: "x"})
		require.NoError(t, err)
		assert.Equal(t, now, saved.CreatedAt)
		assert.Equal(t, 1, store.Len())

		mu.Lock()
		now = now.Add(2 * time.Minute)
		mu.Unlock()

		_, err = store.Get(context.Background(), saved.ID)
		assert.ErrorIs(t, err, preview.ErrNotFound)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("oldest document is evicted at capacity", func(t *testing.T) {
		t.Parallel()

		store := preview.NewMemoryStore(preview.Config{Capacity: 1})
		first, err := store.Save(context.Background(), preview.Document{HTML: "1"})
		require.NoError(t, err)
		_, err = store.Save(context.Background(), preview.Document{HTML: "2"})
		require.NoError(t, err)

		_, err = store.Get(context.Background(), first.ID)
		assert.ErrorIs(t, err, preview.ErrNotFound)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := preview.NewMemoryStore(preview.Config{}).Save(ctx, preview.Document{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

type fakeRedis struct {
	mu      sync.Mutex
	data    map[string]string
	ttls    map[string]time.Duration
	failErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return redis.NewStringResult("", f.failErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, exp time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return redis.NewStatusResult("", f.failErr)
	}
	f.data[key] = string(value.([]byte))
	f.ttls[key] = exp
	return redis.NewStatusResult("OK", nil)
}

func TestRedisStore(t *testing.T) {
	t.Parallel()

	cfg := preview.Config{TTL: 30 * time.Minute, KeyPrefix: "test:preview:"}

	t.Run("stores json under prefixed key with ttl", func(t *testing.T) {
		t.Parallel()

		client := newFakeRedis()
		store := preview.NewRedisStore(client, cfg)

		saved, err := store.Save(context.Background(), preview.Document{Subject: "Hi", Filename: "hi.html", HTML: "<p>hi</p>", Offers: 2})
		require.NoError(t, err)

		key := "test:preview:" + saved.ID
		require.Contains(t, client.data, key)
		assert.Equal(t, 30*time.Minute, client.ttls[key])

		var stored preview.Document
		require.NoError(t, json.Unmarshal([]byte(client.data[key]), &stored))
		assert.Equal(t, "hi.html", stored.Filename)

		got, err := store.Get(context.Background(), saved.ID)
		require.NoError(t, err)
		assert.Equal(t, saved.HTML, got.HTML)
		assert.Equal(t, 2, got.Offers)
		assert.True(t, saved.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()

		_, err := preview.NewRedisStore(newFakeRedis(), cfg).Get(context.Background(), uuid.NewString())
		assert.ErrorIs(t, err, preview.ErrNotFound)
	})

	t.Run("corrupt payload", func(t *testing.T) {
		t.Parallel()

		client := newFakeRedis()
		id := uuid.NewString()
		client.data["test:preview:"+id] = "{not json"
		_, err := preview.NewRedisStore(client, cfg).Get(context.Background(), id)
		assert.ErrorIs(t, err, preview.ErrStoreFailed)
	})

	t.Run("client failure", func(t *testing.T) {
		t.Parallel()

		client := newFakeRedis()
		client.failErr = errors.New("connection refused")
		store := preview.NewRedisStore(client, cfg)

		_, err := store.Save(context.Background(), preview.Document{HTML: "x"})
		assert.ErrorIs(t, err, preview.ErrStoreFailed)
		_, err = store.Get(context.Background(), uuid.NewString())
		assert.ErrorIs(t, err, preview.ErrStoreFailed)
	})
}
