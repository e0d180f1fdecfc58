package directory

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/ports"
)

// CachedDirectory caches found records only. Not-found answers and transport
// failures always go back to the directory on the next call.
type CachedDirectory struct {
	next   ports.UserDirectory
	cache  ports.CachePort
	ttl    time.Duration
	logger ports.LoggerPort
}

func NewCachedDirectory(next ports.UserDirectory, cache ports.CachePort, ttl time.Duration, logger ports.LoggerPort) *CachedDirectory {
	return &CachedDirectory{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *CachedDirectory) FindByEmail(ctx context.Context, email string) (*domain.UserRecord, error) {
	cacheKey := ports.UserEmailCacheKey(email)

	cachedData, err := c.cache.Get(ctx, cacheKey)
	switch {
	case err == nil:
		var record domain.UserRecord
		if err := json.Unmarshal(cachedData, &record); err == nil && record.Email == email && record.PasswordHash != "" {
			return &record, nil
		}
		c.logger.WarnContext(ctx, "Discarding unreadable directory cache entry", nil)
	case !errors.Is(err, ports.ErrCacheMiss):
		c.logger.WarnContext(ctx, "Directory cache unavailable", map[string]interface{}{
			"error": err.Error(),
		})
	}

	record, err := c.next.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(record)
	if err != nil {
		c.logger.WarnContext(ctx, "Failed to marshal record for directory cache", map[string]interface{}{
			"error": err.Error(),
		})
		return record, nil
	}
	if err := c.cache.Set(ctx, cacheKey, data, c.ttl); err != nil {
		c.logger.WarnContext(ctx, "Failed to cache directory record", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return record, nil
}

var _ ports.UserDirectory = (*CachedDirectory)(nil)
