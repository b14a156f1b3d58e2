package redis

import (
	"context"
	"time"
)

// IdempotencyStoreInterface defines storage for replayable command responses.
type IdempotencyStoreInterface interface {
	// Get returns the stored response, or nil on a miss.
	Get(ctx context.Context, key string) (*CachedResponse, error)
	Set(ctx context.Context, key string, response *CachedResponse, ttl time.Duration) error
	// Reserve claims key for an in-flight request. False means another
	// request already holds it.
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// Ensure concrete types implement interfaces.
var (
	_ IdempotencyStoreInterface = (*IdempotencyStore)(nil)
)
