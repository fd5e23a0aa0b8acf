//go:build integration
// +build integration

package test

import (
	"context"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	authgate "github.com/feliden/authgate"
	"github.com/feliden/authgate/session"
)

// redisMode describes which Redis backend the compatibility suite is running against.
type redisMode struct {
	name  string
	setup func(t *testing.T) (redis.UniversalClient, func())
}

// redisModes returns the set of Redis backends to test.
// miniredis is always available.
// Real Redis standalone is used when REDIS_ADDR is set (e.g. "127.0.0.1:6379").
func redisModes(t *testing.T) []redisMode {
	t.Helper()
	modes := []redisMode{
		{
			name: "miniredis",
			setup: func(t *testing.T) (redis.UniversalClient, func()) {
				t.Helper()
				mr, err := miniredis.Run()
				if err != nil {
					t.Fatalf("miniredis: %v", err)
				}
				rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
				return rdb, func() { _ = rdb.Close(); mr.Close() }
			},
		},
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		modes = append(modes, redisMode{
			name: "standalone:" + addr,
			setup: func(t *testing.T) (redis.UniversalClient, func()) {
				t.Helper()
				rdb := redis.NewClient(&redis.Options{Addr: addr})
				if err := rdb.FlushDB(context.Background()).Err(); err != nil {
					t.Fatalf("flushdb: %v", err)
				}
				return rdb, func() { _ = rdb.Close() }
			},
		})
	}

	return modes
}

func TestRedisBackedEngineRoundTrip(t *testing.T) {
	for _, mode := range redisModes(t) {
		t.Run(mode.name, func(t *testing.T) {
			rdb, done := mode.setup(t)
			defer done()

			cfg := authgate.DefaultConfig()
			cfg.Password.Memory = 8 * 1024
			cfg.Password.Time = 1
			cfg.Password.Parallelism = 1

			engine, err := authgate.New().WithConfig(cfg).WithRedis(rdb).Build()
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			defer engine.Close()

			ctx := context.Background()

			up := engine.SignUp(ctx, authgate.SignUpRequest{LoginName: "alice", Password: "secret"})
			if up.Status != authgate.StatusSuccess {
				t.Fatalf("SignUp status = %v", up.Status)
			}

			in := engine.SignIn(ctx, authgate.SignInRequest{LoginName: "alice", Password: "secret"})
			if in.Status != authgate.StatusSuccess || in.Token == "" {
				t.Fatalf("SignIn = %+v", in)
			}

			store := session.NewRedisStore(rdb, cfg.Session.RedisPrefix, cfg.Session.TokenLength)
			owner, ok, err := store.Owner(ctx, in.Token)
			if err != nil || !ok {
				t.Fatalf("Owner = %q %v %v, want live session", owner, ok, err)
			}
			if owner != in.IdentityID {
				t.Fatalf("owner = %q, want %q", owner, in.IdentityID)
			}

			out := engine.SignOut(ctx, authgate.SignOutRequest{Token: in.Token})
			if out.Status != authgate.StatusSuccess {
				t.Fatalf("SignOut status = %v", out.Status)
			}

			if _, ok, _ := store.Owner(ctx, in.Token); ok {
				t.Fatal("expected token gone after sign-out")
			}
		})
	}
}

func TestRedisSessionKeysAreNamespaced(t *testing.T) {
	store, mr, done := newIntegrationStore(t)
	defer done()

	token, err := store.Issue(context.Background(), "id-1")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	keys := mr.Keys()
	if len(keys) != 1 {
		t.Fatalf("expected 1 key, got %v", keys)
	}
	if keys[0] != "ag:"+token {
		t.Fatalf("key = %q, want prefix ag:", keys[0])
	}

	// Sessions never expire on their own; only revocation removes them.
	if mr.TTL(keys[0]) != 0 {
		t.Fatalf("expected no TTL, got %v", mr.TTL(keys[0]))
	}
}
