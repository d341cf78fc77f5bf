package redisdb

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"tutorchat/internal/tools"
)

func TestPreviewCache_NilIsNoOp(t *testing.T) {
	var c *PreviewCache
	ctx := context.Background()

	if _, ok := c.Get(ctx, "http://example.com"); ok {
		t.Error("nil cache should always miss")
	}
	// Must not panic.
	c.Set(ctx, "http://example.com", &tools.PagePreview{Title: "t", URLHost: "example.com"})
}

func TestPreviewCache_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	c := NewPreviewCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	ctx := context.Background()

	if _, ok := c.Get(ctx, "http://example.com"); ok {
		t.Fatal("expected miss before Set")
	}

	want := &tools.PagePreview{Title: "Example", URLHost: "example.com"}
	c.Set(ctx, "http://example.com", want)

	got, ok := c.Get(ctx, "http://example.com")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if got.Title != want.Title || got.URLHost != want.URLHost {
		t.Errorf("unexpected preview: %+v", got)
	}
}

func TestPreviewCache_Expiry(t *testing.T) {
	mr := miniredis.RunT(t)
	c := NewPreviewCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	ctx := context.Background()

	c.Set(ctx, "http://example.com", &tools.PagePreview{Title: "t", URLHost: "example.com"})
	mr.FastForward(previewTTL + 1)

	if _, ok := c.Get(ctx, "http://example.com"); ok {
		t.Error("expected miss after TTL")
	}
}
