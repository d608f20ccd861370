package cache

import (
	"bytes"
	"context"
	"testing"

	"github.com/paimonbot/paimonbot/internal/testutil"
)

func TestNilCacheIsAlwaysMiss(t *testing.T) {
	var c *Cache

	ctx := context.Background()
	if _, ok := c.GetShowcase(ctx, "812345678"); ok {
		t.Error("nil cache should miss")
	}
	c.SetShowcase(ctx, "812345678", []byte("{}"))
	if err := c.Ping(ctx); err != nil {
		t.Errorf("Ping: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestShowcaseRoundTrip(t *testing.T) {
	url := testutil.RequireEnv(t, "REDIS_URL")
	testutil.FlushRedis(t, url)

	ctx := context.Background()
	c, err := New(ctx, url, testutil.DiscardLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	if _, ok := c.GetShowcase(ctx, "812345678"); ok {
		t.Fatal("unexpected hit on empty cache")
	}

	payload := []byte(`{"playerInfo":{"nickname":"Aether"}}`)
	c.SetShowcase(ctx, "812345678", payload)

	got, ok := c.GetShowcase(ctx, "812345678")
	if !ok {
		t.Fatal("expected hit after set")
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("payload = %q", got)
	}
}

func TestNewRejectsBadURL(t *testing.T) {
	if _, err := New(context.Background(), "not-a-url", testutil.DiscardLogger()); err == nil {
		t.Fatal("expected error")
	}
}
