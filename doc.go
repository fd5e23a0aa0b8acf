// Package authgate provides an in-memory credential and session management
// engine: salted argon2id credential storage, opaque high-entropy session
// tokens, and the orchestration that binds them into sign-up, sign-in, and
// sign-out.
//
// The package is designed for concurrent server workloads: Engine methods are
// safe to call from multiple goroutines after initialization through
// [Builder.Build].
//
// # Architecture boundaries
//
// authgate is the public surface. It exposes [Engine], [Builder], [Config],
// the [CredentialStore] and [SessionStore] contracts, and value types
// (SignInResponse, MetricsSnapshot, AuditEvent, etc.). Reference store
// implementations live in the credential and session subpackages; audit
// dispatch lives under internal/ and is never exported directly.
//
// # What this package must NOT do
//
//   - Expose raw passwords, salts, or store internals in its public API.
//   - Leave an operation unanswered: SignUp, SignIn, and SignOut always
//     return a well-formed response, never a panic or a bare error.
//   - Distinguish "unknown user" from "wrong password" in any returned
//     signal.
package authgate
