package cache_test

import (
	"testing"
	"time"

	cache "github.com/andreycpu/personacache"
)

func TestReaperReclaimsExpiredEntries(t *testing.T) {
	c, err := cache.NewTTL(100*time.Millisecond, 25*time.Millisecond)
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}
	defer c.Close()

	c.Put("x", 1)

	time.Sleep(300 * time.Millisecond)

	// The reaper must have swept the entry without any client read.
	if c.Size() != 0 {
		t.Fatalf("expected the reaper to reclaim the entry, size=%d", c.Size())
	}
	if _, ok := c.Get("x"); ok {
		t.Fatal("expected x to be gone")
	}
	if s := c.Stats(); s.Expirations < 1 {
		t.Fatalf("expected at least one expiration, got %+v", s)
	}
}

func TestCleanupReturnsRemovedCount(t *testing.T) {
	// No reaper: cleanup is driven by hand.
	c, _ := cache.NewTTL(50*time.Millisecond, 0)
	defer c.Close()

	c.Put("a", 1)
	c.Put("b", 2)
	c.PutWithTTL("keep", 3, 0)

	time.Sleep(120 * time.Millisecond)

	if n := c.Cleanup(); n != 2 {
		t.Fatalf("cleanup should remove the 2 expired entries, removed %d", n)
	}
	if n := c.Cleanup(); n != 0 {
		t.Fatalf("second cleanup should remove nothing, removed %d", n)
	}

	if !c.Contains("keep") {
		t.Fatal("the pinned entry must survive cleanup")
	}
	if s := c.Stats(); s.Expirations != 2 {
		t.Fatalf("cleanup must count expirations, got %d", s.Expirations)
	}
}

func TestCloseIsIdempotentAndBounded(t *testing.T) {
	c, _ := cache.NewTTL(time.Second, 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		c.Close()
		c.Close() // second close must not hang or panic
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("close did not return in bounded time")
	}

	// The cache stays usable after close; only background work stops.
	c.Put("k", 1)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("cache must remain usable after close")
	}
}

func TestZeroIntervalDisablesReaper(t *testing.T) {
	c, _ := cache.NewTTL(30*time.Millisecond, 0)
	defer c.Close()

	c.Put("x", 1)
	time.Sleep(100 * time.Millisecond)

	// Nothing reclaims eagerly, so the expired entry still occupies a slot.
	if c.Size() != 1 {
		t.Fatalf("without a reaper the expired entry should linger, size=%d", c.Size())
	}

	// It still reads as absent.
	if _, ok := c.Get("x"); ok {
		t.Fatal("expired entry must be absent on read")
	}
	if c.Size() != 0 {
		t.Fatal("the read should have lazily removed it")
	}
}
