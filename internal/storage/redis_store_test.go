package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/rueidis"
)

// Requires Redis on localhost:6379; skipped otherwise.
const testRedisAddr = "localhost:6379"

func setupRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{testRedisAddr},
		DisableCache: true,
	})
	if err != nil {
		t.Skipf("Redis not available at %s: %v", testRedisAddr, err)
	}
	t.Cleanup(client.Close)

	return NewRedisStore(client)
}

func TestRedisStore_SetGetDelete(t *testing.T) {
	store := setupRedisStore(t)
	ctx := context.Background()
	key := "checklist_test_" + t.Name()

	if err := store.Set(ctx, key, []byte(`{"lastResetDate":"2024-01-15"}`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Delete(context.Background(), key) })

	got, err := store.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != `{"lastResetDate":"2024-01-15"}` {
		t.Errorf("unexpected value %s", got)
	}

	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Get(ctx, key); !errors.Is(err, ErrBlobNotFound) {
		t.Errorf("expected ErrBlobNotFound, got %v", err)
	}
}
