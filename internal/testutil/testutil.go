// Package testutil provides shared helpers for integration-style tests.
package testutil

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/redis/go-redis/v9"

	"github.com/paimonbot/paimonbot/internal/model"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TempDataFile returns a data-file path in a per-test temp directory.
func TempDataFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "user_data.json")
}

// WriteDataFile seeds a credential data file with the given records.
func WriteDataFile(t testing.TB, path string, records map[string]model.UserRecord) {
	t.Helper()

	data, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("marshal records: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write data file: %v", err)
	}
}

// FlushRedis clears the Redis database behind url. Skips when Redis is not
// reachable so cache tests degrade to a skip instead of a failure.
func FlushRedis(t testing.TB, url string) *redis.Client {
	t.Helper()

	opt, err := redis.ParseURL(url)
	if err != nil {
		t.Fatalf("parse redis url: %v", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis not reachable: %v", err)
	}
	if err := client.FlushDB(context.Background()).Err(); err != nil {
		t.Fatalf("flush redis: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}
