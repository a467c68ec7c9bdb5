package project

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	platformredis "taskdeck/internal/platform/redis"
)

// ListCache caches each owner's project list in Redis. It is read-through
// with manual invalidation on mutation; a cache problem degrades to the
// store, never to an error.
type ListCache struct {
	client *platformredis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewListCache returns nil when no Redis client is configured; a nil cache is
// safe to call.
func NewListCache(client *platformredis.Client, ttl time.Duration, logger *slog.Logger) *ListCache {
	if client == nil {
		return nil
	}
	return &ListCache{client: client, ttl: ttl, logger: logger}
}

func cacheKey(ownerID int64) string {
	return fmt.Sprintf("projects:owner:%d", ownerID)
}

// Get returns the cached list for the owner, or false on miss or error.
func (c *ListCache) Get(ctx context.Context, ownerID int64) ([]Project, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, cacheKey(ownerID)).Bytes()
	if err != nil {
		return nil, false
	}
	var projects []Project
	if err := json.Unmarshal(raw, &projects); err != nil {
		c.logger.WarnContext(ctx, "corrupt project cache entry", "owner_id", ownerID, "error", err)
		return nil, false
	}
	return projects, true
}

// Set stores the owner's list with the configured TTL.
func (c *ListCache) Set(ctx context.Context, ownerID int64, projects []Project) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(projects)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey(ownerID), raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "failed to fill project cache", "owner_id", ownerID, "error", err)
	}
}

// Invalidate drops the owner's cached list after a mutation.
func (c *ListCache) Invalidate(ctx context.Context, ownerID int64) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, cacheKey(ownerID)).Err(); err != nil {
		c.logger.WarnContext(ctx, "failed to invalidate project cache", "owner_id", ownerID, "error", err)
	}
}
