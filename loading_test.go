package cache_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	cache "github.com/andreycpu/personacache"
)

//
// ================= TEST BACKING STORE =================
//

type TestStore struct {
	mu    sync.RWMutex
	data  map[string]any
	loads int
	fail  error
}

func NewTestStore() *TestStore {
	return &TestStore{data: make(map[string]any)}
}

func (s *TestStore) Load(ctx context.Context, key string) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	if s.fail != nil {
		return nil, s.fail
	}
	return s.data[key], nil
}

func (s *TestStore) Put(ctx context.Context, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	s.data[key] = value
	return nil
}

func (s *TestStore) Loads() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loads
}

//
// ================= READ-THROUGH =================
//

func TestReadThroughLoadsOnMiss(t *testing.T) {
	ctx := context.Background()
	c, _ := cache.NewLRU(10)
	defer c.Close()

	store := NewTestStore()
	store.data["keyX"] = "store-value"
	rt := cache.NewReadThrough(c, store, time.Minute)

	v, err := rt.Get(ctx, "keyX")
	if err != nil || v != "store-value" {
		t.Fatalf("expected store-value, got %v (%v)", v, err)
	}

	// The second read is served from memory.
	v, err = rt.Get(ctx, "keyX")
	if err != nil || v != "store-value" {
		t.Fatalf("expected cached store-value, got %v (%v)", v, err)
	}
	if store.Loads() != 1 {
		t.Fatalf("backing store should be hit once, was hit %d times", store.Loads())
	}
}

func TestReadThroughWriteThrough(t *testing.T) {
	ctx := context.Background()
	c, _ := cache.NewLRU(10)
	defer c.Close()

	store := NewTestStore()
	rt := cache.NewReadThrough(c, store, 0)

	if err := rt.Put(ctx, "key1", "value1"); err != nil {
		t.Fatalf("put: %v", err)
	}

	// Both the store and the cache hold the value now.
	if store.data["key1"] != "value1" {
		t.Fatal("value must reach the backing store")
	}
	if v, ok := c.Get("key1"); !ok || v != "value1" {
		t.Fatalf("value must reach the cache, got %v %v", v, ok)
	}
}

func TestReadThroughStoreFailureCachesNothing(t *testing.T) {
	ctx := context.Background()
	c, _ := cache.NewLRU(10)
	defer c.Close()

	store := NewTestStore()
	store.fail = errors.New("store down")
	rt := cache.NewReadThrough(c, store, 0)

	if err := rt.Put(ctx, "k", "v"); err == nil {
		t.Fatal("expected the store error to propagate")
	}
	if c.Contains("k") {
		t.Fatal("a rejected write must not reach the cache")
	}

	if _, err := rt.Get(ctx, "k"); err == nil {
		t.Fatal("expected the load error to propagate")
	}
	if c.Contains("k") {
		t.Fatal("a failed load must not be cached")
	}
}

func TestReadThroughInvalidate(t *testing.T) {
	ctx := context.Background()
	c, _ := cache.NewLRU(10)
	defer c.Close()

	store := NewTestStore()
	store.data["k"] = "fresh"
	rt := cache.NewReadThrough(c, store, 0)

	if _, err := rt.Get(ctx, "k"); err != nil {
		t.Fatalf("get: %v", err)
	}
	if !rt.Invalidate("k") {
		t.Fatal("invalidate should report the cached copy existed")
	}

	// The store is untouched and the next read reloads.
	if _, err := rt.Get(ctx, "k"); err != nil {
		t.Fatalf("get after invalidate: %v", err)
	}
	if store.Loads() != 2 {
		t.Fatalf("expected a reload after invalidation, loads=%d", store.Loads())
	}
}
