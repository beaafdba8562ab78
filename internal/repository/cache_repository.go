package repository

import (
	"context"
	"time"
)

// CacheRepository caches response fragments (currently AI search summaries).
// Entries expire after their TTL; a zero TTL means no expiry.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
