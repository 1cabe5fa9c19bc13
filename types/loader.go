package types

import "context"

// Loader is the contract between a cache and its backing store.
// It is what a read-through wrapper calls on a miss, and what a
// write-through wrapper calls before populating the cache.
type Loader interface {

	// Load fetches the value for a key that was not found in memory.
	// Returning (nil, nil) means the backing store has no value either.
	Load(ctx context.Context, key string) (any, error)

	// Put writes a value back to the backing store. This does NOT
	// store anything in the cache itself.
	Put(ctx context.Context, key string, value any) error
}
