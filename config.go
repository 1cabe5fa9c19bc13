package cache

import (
	"fmt"
	"time"

	"github.com/andreycpu/personacache/eviction"
	"github.com/andreycpu/personacache/types"
)

// Unbounded is the MaxSize sentinel for caches with no capacity limit.
// It is only legal together with the None eviction policy: such a cache
// sheds entries exclusively through TTL expiry.
const Unbounded = -1

/*
Config describes a cache instance. It is a plain struct: set the fields
you care about and pass it to New, which validates eagerly so a bad
configuration fails at construction instead of corrupting state later.
*/
type Config struct {

	// MaxSize is the maximum number of entries, or Unbounded.
	// Bounded eviction policies require a positive MaxSize.
	MaxSize int

	// DefaultTTL is applied by Put and by GetOrCompute when the caller
	// passes no explicit TTL. Zero means entries never expire by default.
	DefaultTTL time.Duration

	// CleanupInterval is how often the background reaper reclaims
	// expired entries. Zero disables the reaper; expired entries are
	// then removed only lazily on access or by explicit Cleanup calls.
	CleanupInterval time.Duration

	// Policy selects the eviction strategy. Defaults to eviction.LRU.
	Policy eviction.PolicyType

	// Metrics optionally observes cache events. Defaults to NoopMetrics.
	Metrics types.Metrics
}

// normalize fills defaults. It does not validate.
func (c Config) normalize() Config {
	if c.Policy == "" {
		c.Policy = eviction.LRU
	}
	if c.Metrics == nil {
		c.Metrics = types.NoopMetrics{}
	}
	return c
}

func (c Config) validate() error {
	if !c.Policy.Valid() {
		return fmt.Errorf("cache: unknown eviction policy %q", string(c.Policy))
	}
	if c.CleanupInterval < 0 {
		return fmt.Errorf("cache: cleanup interval must not be negative, got %v", c.CleanupInterval)
	}
	if c.DefaultTTL < 0 {
		return fmt.Errorf("cache: default TTL must not be negative, got %v", c.DefaultTTL)
	}
	if c.Policy.Bounded() {
		if c.MaxSize == Unbounded {
			return fmt.Errorf("cache: %s policy requires a positive MaxSize, got Unbounded", c.Policy)
		}
		if c.MaxSize < 1 {
			return fmt.Errorf("cache: %s policy requires a positive MaxSize, got %d", c.Policy, c.MaxSize)
		}
	} else if c.MaxSize != Unbounded {
		return fmt.Errorf("cache: the None policy is TTL-only; MaxSize must be Unbounded, got %d", c.MaxSize)
	}
	return nil
}
