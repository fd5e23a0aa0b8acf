package session

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisStoreTest(t *testing.T) (*RedisStore, *redis.Client, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(rdb, "ag", 32)
	return store, rdb, func() {
		rdb.Close()
		mr.Close()
	}
}

func TestRedisIssueAndOwner(t *testing.T) {
	store, rdb, done := newRedisStoreTest(t)
	defer done()
	ctx := context.Background()

	token, err := store.Issue(ctx, "identity-1")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	owner, ok, err := store.Owner(ctx, token)
	if err != nil {
		t.Fatalf("Owner failed: %v", err)
	}
	if !ok || owner != "identity-1" {
		t.Fatalf("expected owner identity-1, got %q ok=%v", owner, ok)
	}

	// Session keys must not expire on their own.
	ttl, err := rdb.TTL(ctx, store.key(token)).Result()
	if err != nil {
		t.Fatalf("TTL failed: %v", err)
	}
	if ttl >= 0 {
		t.Fatalf("expected no TTL on session key, got %v", ttl)
	}
}

func TestRedisRevokeIdempotent(t *testing.T) {
	store, _, done := newRedisStoreTest(t)
	defer done()
	ctx := context.Background()

	token, err := store.Issue(ctx, "identity-1")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if err := store.Revoke(ctx, token); err != nil {
		t.Fatalf("first revoke: %v", err)
	}
	if err := store.Revoke(ctx, token); err != nil {
		t.Fatalf("second revoke: %v", err)
	}
	if err := store.Revoke(ctx, ""); err != nil {
		t.Fatalf("empty-token revoke: %v", err)
	}

	if _, ok, err := store.Owner(ctx, token); err != nil || ok {
		t.Fatalf("expected revoked token to be gone: ok=%v err=%v", ok, err)
	}
}

func TestRedisIssueDistinctRevocableIndependently(t *testing.T) {
	store, _, done := newRedisStoreTest(t)
	defer done()
	ctx := context.Background()

	first, err := store.Issue(ctx, "identity-1")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	second, err := store.Issue(ctx, "identity-1")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct tokens")
	}

	if err := store.Revoke(ctx, first); err != nil {
		t.Fatalf("Revoke failed: %v", err)
	}
	if owner, ok, err := store.Owner(ctx, second); err != nil || !ok || owner != "identity-1" {
		t.Fatalf("second token disturbed: owner=%q ok=%v err=%v", owner, ok, err)
	}
}

func TestRedisUnavailableSurfacesSentinel(t *testing.T) {
	store, rdb, done := newRedisStoreTest(t)
	done() // tear the backend down first
	_ = rdb
	ctx := context.Background()

	if _, err := store.Issue(ctx, "identity-1"); err == nil {
		t.Fatal("expected Issue against closed backend to fail")
	}
	if err := store.Revoke(ctx, "some-token"); err == nil {
		t.Fatal("expected Revoke against closed backend to fail")
	}
}
