package session

import (
	"context"
	"sync"

	"github.com/feliden/authgate/internal"
)

// MemoryStore is the reference in-memory session backend: token to identity
// id behind a single mutex.
type MemoryStore struct {
	mu          sync.Mutex
	tokenLength int
	byToken     map[string]string
}

// NewMemoryStore creates an empty [MemoryStore] issuing tokens with
// tokenLength bytes of entropy (minimum 16; shorter values are raised to the
// minimum).
func NewMemoryStore(tokenLength int) *MemoryStore {
	if tokenLength < internal.MinTokenBytes {
		tokenLength = internal.MinTokenBytes
	}
	return &MemoryStore{
		tokenLength: tokenLength,
		byToken:     make(map[string]string),
	}
}

// Issue generates a fresh token bound to identityID and returns it. The
// token comes from an independent random source; it is never derived from
// the identity id or a prior token. At 128+ bits of entropy a collision is
// cryptographically negligible, but the loop regenerates on one anyway so
// the uniqueness invariant holds unconditionally.
func (s *MemoryStore) Issue(_ context.Context, identityID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		token, err := internal.NewSessionToken(s.tokenLength)
		if err != nil {
			return "", err
		}
		if _, live := s.byToken[token]; live {
			continue
		}
		s.byToken[token] = identityID
		return token, nil
	}
}

// Revoke removes token if present. Unknown and empty tokens are ignored.
func (s *MemoryStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byToken, token)
	return nil
}

// Owner reports the identity id bound to token, if the token is live.
// Test helper.
func (s *MemoryStore) Owner(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byToken[token]
	return id, ok
}

// Len reports the number of live sessions. Test helper.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.byToken)
}
