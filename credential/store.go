package credential

import (
	"context"
	"errors"
	"sync"

	"github.com/feliden/authgate/password"
	"github.com/google/uuid"
)

// ErrDuplicateLoginName is returned by Register when the login name already
// maps to a record. The duplicate check runs before any hashing work.
var ErrDuplicateLoginName = errors.New("login name already registered")

type record struct {
	identityID string
	loginName  string
	hash       string
}

// MemoryStore is the reference in-memory credential backend.
//
// All operations are serialized behind a single mutex that is held for the
// full operation, including hash computation. Hashing is deliberately
// CPU-bound, so this lock is the primary serialization point under load.
type MemoryStore struct {
	mu     sync.Mutex
	hasher *password.Argon2
	byName map[string]*record
	byID   map[string]*record
}

// NewMemoryStore creates an empty [MemoryStore] hashing with the given
// argon2id hasher.
func NewMemoryStore(hasher *password.Argon2) *MemoryStore {
	return &MemoryStore{
		hasher: hasher,
		byName: make(map[string]*record),
		byID:   make(map[string]*record),
	}
}

// Register creates a record for loginName with a fresh identity id and a
// salted argon2id hash of password. It returns [ErrDuplicateLoginName] when
// loginName is already registered.
func (s *MemoryStore) Register(_ context.Context, loginName, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[loginName]; exists {
		return ErrDuplicateLoginName
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	rec := &record{
		identityID: uuid.NewString(),
		loginName:  loginName,
		hash:       hash,
	}
	s.insert(rec)

	return nil
}

// Verify looks up loginName and checks password against the stored hash.
// Unknown login name, wrong password, and a malformed stored hash all report
// ok=false; callers cannot distinguish them through the returned signal.
func (s *MemoryStore) Verify(_ context.Context, loginName, password string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.byName[loginName]
	if !exists {
		return "", false, nil
	}

	ok, err := s.hasher.Verify(password, rec.hash)
	if err != nil || !ok {
		// Malformed stored hash degrades to a verification miss.
		return "", false, nil
	}

	return rec.identityID, true, nil
}

// Remove deletes the record for identityID from both lookup paths. Removing
// an unknown id is a no-op.
func (s *MemoryStore) Remove(_ context.Context, identityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.remove(identityID)
	return nil
}

// Len reports the number of stored records. Test helper.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.byID)
}

// insert and remove are the only paths that touch the maps; both maps change
// together or not at all. Callers hold s.mu.
func (s *MemoryStore) insert(rec *record) {
	s.byName[rec.loginName] = rec
	s.byID[rec.identityID] = rec
}

func (s *MemoryStore) remove(identityID string) {
	rec, exists := s.byID[identityID]
	if !exists {
		return
	}
	delete(s.byID, identityID)
	delete(s.byName, rec.loginName)
}
