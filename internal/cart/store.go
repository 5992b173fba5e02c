package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nextlayer-studio/storefront-backend/pkg/redis"
)

// Abandoned carts expire on their own.
const slotTTL = 30 * 24 * time.Hour

// Store is the persistence slot for a session's cart. Load returns an empty
// slice for sessions that have never saved; it errors only when the slot
// exists but cannot be read back.
type Store interface {
	Load(ctx context.Context, session string) ([]Line, error)
	Save(ctx context.Context, session string, lines []Line) error
}

// slotClient is the subset of the redis client the store reads and writes
// through.
type slotClient interface {
	CartKey(session string) string
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// RedisStore keeps each session's lines as a JSON array under the session's
// cart key.
type RedisStore struct {
	client slotClient
}

// NewRedisStore builds the production cart slot.
func NewRedisStore(client *redis.Client) (*RedisStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Load(ctx context.Context, session string) ([]Line, error) {
	raw, err := s.client.Get(ctx, s.client.CartKey(session))
	if err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return []Line{}, nil
		}
		return nil, fmt.Errorf("loading cart slot: %w", err)
	}

	var lines []Line
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, fmt.Errorf("decoding cart slot: %w", err)
	}
	return lines, nil
}

func (s *RedisStore) Save(ctx context.Context, session string, lines []Line) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encoding cart slot: %w", err)
	}
	if err := s.client.Set(ctx, s.client.CartKey(session), raw, slotTTL); err != nil {
		return fmt.Errorf("saving cart slot: %w", err)
	}
	return nil
}

// MemoryStore is an in-process slot used by tests and single-node dev runs.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string][]Line
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]Line)}
}

func (s *MemoryStore) Load(_ context.Context, session string) ([]Line, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines, ok := s.slots[session]
	if !ok {
		return []Line{}, nil
	}
	copied := make([]Line, len(lines))
	copy(copied, lines)
	return copied, nil
}

func (s *MemoryStore) Save(_ context.Context, session string, lines []Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]Line, len(lines))
	copy(copied, lines)
	s.slots[session] = copied
	return nil
}
