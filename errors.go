package authgate

import (
	"errors"

	"github.com/feliden/authgate/credential"
)

var (
	// ErrDuplicateIdentity is an exported constant or variable used by the authentication engine.
	// It is the sentinel every [CredentialStore] implementation must return
	// from Register for an already-taken login name.
	ErrDuplicateIdentity = credential.ErrDuplicateLoginName
	// ErrHashingFailure is an exported constant or variable used by the authentication engine.
	ErrHashingFailure = errors.New("credential hashing failed")
	// ErrSessionBackendUnavailable is an exported constant or variable used by the authentication engine.
	ErrSessionBackendUnavailable = errors.New("session backend unavailable")
	// ErrCredentialBackendUnavailable is an exported constant or variable used by the authentication engine.
	ErrCredentialBackendUnavailable = errors.New("credential backend unavailable")
	// ErrEngineNotReady is an exported constant or variable used by the authentication engine.
	ErrEngineNotReady = errors.New("engine not initialized")
)
