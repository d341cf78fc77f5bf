package redisdb

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"tutorchat/internal/tools"
)

const previewTTL = 15 * time.Minute

// PreviewCache stores successful page previews keyed by URL. All methods are
// safe on a nil receiver, which makes the cache strictly optional.
type PreviewCache struct {
	rdb *redis.Client
}

// NewPreviewCache wraps a redis client; a nil client yields a nil cache.
func NewPreviewCache(rdb *redis.Client) *PreviewCache {
	if rdb == nil {
		return nil
	}
	return &PreviewCache{rdb: rdb}
}

func previewKey(url string) string {
	return "preview:" + url
}

// Get returns the cached preview for a URL, if any. Redis errors are treated
// as cache misses.
func (c *PreviewCache) Get(ctx context.Context, url string) (*tools.PagePreview, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, previewKey(url)).Result()
	if err != nil {
		return nil, false
	}
	var p tools.PagePreview
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, false
	}
	return &p, true
}

// Set stores a preview with a fixed TTL. Failures are ignored; the cache is
// best-effort.
func (c *PreviewCache) Set(ctx context.Context, url string, p *tools.PagePreview) {
	if c == nil || p == nil {
		return
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, previewKey(url), raw, previewTTL)
}
