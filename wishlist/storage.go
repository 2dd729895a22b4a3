package wishlist

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// MemoryStorage keeps the blob in memory. Used by tests and by Redis-less
// development runs; contents last for the process lifetime only.
type MemoryStorage struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Read(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data, nil
}

func (m *MemoryStorage) Write(ctx context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
	return nil
}

// redisTTL keeps abandoned wishlists from accumulating forever. Every write
// refreshes it, so an active browser never loses its set.
const redisTTL = 30 * 24 * time.Hour

// RedisStorage persists the blob under a single key, the server-side
// equivalent of the browser's local storage entry.
type RedisStorage struct {
	client *redis.Client
	key    string
}

func NewRedisStorage(client *redis.Client, key string) *RedisStorage {
	return &RedisStorage{client: client, key: key}
}

func (r *RedisStorage) Read(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *RedisStorage) Write(ctx context.Context, data []byte) error {
	return r.client.Set(ctx, r.key, data, redisTTL).Err()
}
