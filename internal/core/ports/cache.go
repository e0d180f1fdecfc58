package ports

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by CachePort.Get for absent keys.
var ErrCacheMiss = errors.New("cache miss")

type CachePort interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// UserEmailCacheKey is shared by the auth lookup cache and the users service,
// which drops it whenever a user changes.
func UserEmailCacheKey(email string) string {
	return "directory:email:" + email
}

func UserIDCacheKey(id string) string {
	return "user:" + id
}
