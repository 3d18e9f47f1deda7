package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type MemoryStore struct {
	c *gocache.Cache
}

func NewMemoryStore(ttl, cleanup time.Duration) *MemoryStore {
	return &MemoryStore{c: gocache.New(ttl, cleanup)}
}

func (s *MemoryStore) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	v, ok := s.c.Get(key)
	if !ok {
		return false, nil
	}
	raw, ok := v.([]byte)
	if !ok {
		return false, fmt.Errorf("cache: unexpected value type %T for %q", v, key)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("cache: decode %q: %w", key, err)
	}
	return true, nil
}

// Set stores value; a zero ttl uses the store default.
func (s *MemoryStore) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: encode %q: %w", key, err)
	}
	if ttl == 0 {
		ttl = gocache.DefaultExpiration
	}
	s.c.Set(key, raw, ttl)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.c.Delete(key)
	return nil
}

func (s *MemoryStore) Close() error {
	s.c.Flush()
	return nil
}
