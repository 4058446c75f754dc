package preview

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient is the part of redis.Cmdable used by RedisStore.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// RedisStore shares documents between instances. Entries expire with the
// configured TTL.
type RedisStore struct {
	client RedisClient
	prefix string
	ttl    time.Duration
	now    func() time.Time
}

func NewRedisStore(client RedisClient, cfg Config) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: cfg.KeyPrefix,
		ttl:    cfg.TTL,
		now:    time.Now,
	}
}

func (s *RedisStore) key(id string) string {
	return s.prefix + id
}

func (s *RedisStore) Save(ctx context.Context, doc Document) (Document, error) {
	doc = prepare(doc, s.now())
	payload, err := json.Marshal(doc)
	if err != nil {
		return Document{}, errors.Join(ErrStoreFailed, err)
	}
	if err := s.client.Set(ctx, s.key(doc.ID), payload, s.ttl).Err(); err != nil {
		return Document{}, errors.Join(ErrStoreFailed, err)
	}
	return doc, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (Document, error) {
	if err := checkID(id); err != nil {
		return Document{}, err
	}
	payload, err := s.client.Get(ctx, s.key(id)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return Document{}, ErrNotFound
	case err != nil:
		return Document{}, errors.Join(ErrStoreFailed, err)
	}

	var doc Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return Document{}, errors.Join(ErrStoreFailed, err)
	}
	return doc, nil
}
