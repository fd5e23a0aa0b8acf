package authgate

import (
	"context"
	"io"

	internalaudit "github.com/feliden/authgate/internal/audit"
)

// Status is the two-valued outcome reported by every engine operation.
// Internal failure kinds (duplicate login name, hashing failure, unknown
// user, wrong password) are deliberately collapsed into StatusFailure so
// that callers cannot enumerate accounts through differing responses.
type Status uint8

const (
	// StatusSuccess is an exported constant or variable used by the authentication engine.
	StatusSuccess Status = iota
	// StatusFailure is an exported constant or variable used by the authentication engine.
	StatusFailure
)

// String returns the wire spelling of the status.
func (s Status) String() string {
	if s == StatusSuccess {
		return "SUCCESS"
	}
	return "FAILURE"
}

// SignUpRequest is the input for [Engine.SignUp].
type SignUpRequest struct {
	LoginName string
	Password  string
}

// SignUpResponse is returned by [Engine.SignUp]. It carries only a status.
type SignUpResponse struct {
	Status Status
}

// SignInRequest is the input for [Engine.SignIn].
type SignInRequest struct {
	LoginName string
	Password  string
}

// SignInResponse is returned by [Engine.SignIn]. On failure IdentityID and
// Token are both empty strings; callers branch on emptiness, so this is a
// hard contract rather than an unspecified zero value.
type SignInResponse struct {
	Status     Status
	IdentityID string
	Token      string
}

// SignOutRequest is the input for [Engine.SignOut].
type SignOutRequest struct {
	Token string
}

// SignOutResponse is returned by [Engine.SignOut]. The status is always
// StatusSuccess: sign-out is idempotent and never reports whether a session
// actually existed.
type SignOutResponse struct {
	Status Status
}

// CredentialStore is the contract the engine requires from a credential
// backend. The reference in-memory implementation is
// [github.com/feliden/authgate/credential.MemoryStore]; a persistent backend
// can be substituted without changing the engine.
//
// Implementations must serialize Register, Verify, and Remove against each
// other: registration must not race a duplicate check, and removal must not
// race a lookup that would otherwise observe a half-removed record.
type CredentialStore interface {
	// Register creates a new identity record for loginName. It returns
	// ErrDuplicateIdentity when loginName is already registered and
	// ErrHashingFailure (possibly wrapped) when the key derivation step
	// cannot complete. The raw password is never retained.
	Register(ctx context.Context, loginName, password string) error

	// Verify looks up loginName and checks password against the stored
	// credential hash. ok is false for an unknown login name, a mismatched
	// password, and a malformed stored hash alike. err reports backend
	// faults only, never a verification miss.
	Verify(ctx context.Context, loginName, password string) (identityID string, ok bool, err error)

	// Remove deletes the record for identityID from both lookup paths.
	// Removing an unknown id is a no-op, not an error.
	Remove(ctx context.Context, identityID string) error
}

// SessionStore is the contract the engine requires from a session backend.
// It is a pure token-to-owner map: it does not validate that the owner
// identity still exists.
type SessionStore interface {
	// Issue generates a fresh high-entropy token, binds it to identityID,
	// and returns it. Tokens are never derived from the identity id or any
	// prior token.
	Issue(ctx context.Context, identityID string) (token string, err error)

	// Revoke removes token if present. Revoking an unknown or empty token
	// is a no-op, not an error.
	Revoke(ctx context.Context, token string) error
}

// AuditEvent is a structured audit record emitted by the engine.
type AuditEvent = internalaudit.Event

// AuditSink receives [AuditEvent] values from the engine's audit dispatcher.
type AuditSink = internalaudit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = internalaudit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes JSON-encoded events to an
// [io.Writer].
type JSONWriterSink = internalaudit.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] that writes to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}
