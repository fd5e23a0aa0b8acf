package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/feliden/authgate/internal"
	"github.com/redis/go-redis/v9"
)

// ErrRedisUnavailable wraps any Redis transport fault surfaced by
// [RedisStore].
var ErrRedisUnavailable = errors.New("session redis unavailable")

// RedisStore keeps the token-to-owner map in Redis under a key prefix, one
// key per live session. Keys carry no TTL: sessions end only through Revoke.
type RedisStore struct {
	redis       redis.UniversalClient
	prefix      string
	tokenLength int
}

// NewRedisStore creates a [RedisStore] backed by the given Redis client.
// prefix sets the key namespace; tokenLength is the raw token entropy in
// bytes (minimum 16).
func NewRedisStore(client redis.UniversalClient, prefix string, tokenLength int) *RedisStore {
	if tokenLength < internal.MinTokenBytes {
		tokenLength = internal.MinTokenBytes
	}
	return &RedisStore{
		redis:       client,
		prefix:      prefix,
		tokenLength: tokenLength,
	}
}

func (s *RedisStore) key(token string) string {
	return s.prefix + ":" + token
}

// Issue generates a fresh token, binds it to identityID with SETNX, and
// returns it. SETNX makes the uniqueness check and the insert one atomic
// step, so two issuers can never share a token even across processes.
func (s *RedisStore) Issue(ctx context.Context, identityID string) (string, error) {
	for {
		token, err := internal.NewSessionToken(s.tokenLength)
		if err != nil {
			return "", err
		}

		set, err := s.redis.SetNX(ctx, s.key(token), identityID, 0).Result()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
		}
		if !set {
			continue
		}
		return token, nil
	}
}

// Revoke deletes the token key. DEL of a missing key is already a no-op, so
// unknown and empty tokens need no special casing.
func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.redis.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

// Owner reports the identity id bound to token, if the token is live.
func (s *RedisStore) Owner(ctx context.Context, token string) (string, bool, error) {
	id, err := s.redis.Get(ctx, s.key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return id, true, nil
}
