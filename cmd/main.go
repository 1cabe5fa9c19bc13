package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	cache "github.com/andreycpu/personacache"
	"github.com/andreycpu/personacache/eviction"
	"github.com/andreycpu/personacache/metrics"
)

// ================= BACKING STORE =================

type InMemoryStore struct {
	mu   sync.RWMutex
	data map[string]any
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{data: make(map[string]any)}
}

func (s *InMemoryStore) Load(ctx context.Context, key string) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fmt.Println("STORE  → load:", key)
	return s.data[key], nil
}

func (s *InMemoryStore) Put(ctx context.Context, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// ================= MAIN =================

func main() {
	ctx := context.Background()

	fmt.Println("\n==================== SYSTEM BOOT ====================")
	fmt.Println("EVICTION POLICY : LRU")
	fmt.Println("CAPACITY        : 20 keys")
	fmt.Println("DEFAULT TTL     : 5s")
	fmt.Println("REAPER INTERVAL : 1s")

	prom := metrics.NewPrometheusMetrics("personacache", nil)

	c, err := cache.New(cache.Config{
		MaxSize:         20,
		DefaultTTL:      5 * time.Second,
		CleanupInterval: 1 * time.Second,
		Policy:          eviction.LRU,
		Metrics:         prom,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()

	// Expose the Prometheus counters while the demo runs.
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		_ = http.ListenAndServe(":2112", nil)
	}()

	// ====================================================
	fmt.Println("\n==================== 1) ROUND TRIP ====================")
	c.Put("persona:alpha", "analysis-result")
	v, ok := c.Get("persona:alpha")
	fmt.Println("CACHE  → GET persona:alpha =", v, ok)

	// ====================================================
	fmt.Println("\n==================== 2) TTL EXPIRATION ====================")
	c.PutWithTTL("ephemeral", "temp-value", 500*time.Millisecond)
	fmt.Println("CACHE  → PUT ephemeral (TTL = 500ms)")

	time.Sleep(time.Second)

	v, ok = c.Get("ephemeral")
	fmt.Println("CACHE  → GET ephemeral after TTL =", v, ok)

	// ====================================================
	fmt.Println("\n==================== 3) SINGLE-FLIGHT ====================")
	store := NewInMemoryStore()
	_ = store.Put(ctx, "traits:calm", 0.87)
	rt := cache.NewReadThrough(c, store, 0)

	wg := sync.WaitGroup{}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			val, _ := rt.Get(ctx, "traits:calm")
			fmt.Printf("GOROUTINE-%d → GET traits:calm = %v\n", id, val)
		}(i)
	}
	wg.Wait()

	// ====================================================
	fmt.Println("\n==================== 4) EVICTION ====================")
	for i := 0; i < 50; i++ {
		c.Put(fmt.Sprintf("bulk:%d", i), i)
	}
	fmt.Println("CACHE  → size after 50 puts into 20 slots =", c.Size())

	// ====================================================
	fmt.Println("\n==================== 5) PATTERN INVALIDATION ====================")
	n := c.InvalidatePattern("bulk:*")
	fmt.Println("CACHE  → invalidated", n, "bulk keys")

	// ====================================================
	s := c.Stats()
	fmt.Println("\n==================== STATS ====================")
	fmt.Printf("HITS        : %d\n", s.Hits)
	fmt.Printf("MISSES      : %d\n", s.Misses)
	fmt.Printf("EVICTIONS   : %d\n", s.Evictions)
	fmt.Printf("EXPIRATIONS : %d\n", s.Expirations)
	fmt.Printf("HIT RATE    : %.2f\n", s.HitRate)

	// ====================================================
	fmt.Println("\n==================== SHUTDOWN ====================")
	c.Close()
	fmt.Println("SYSTEM → cache closed cleanly")
}
