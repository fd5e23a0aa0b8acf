// Package session provides the session token stores: a pure map from opaque
// issued token to owning identity id.
//
// Two backends ship with the engine. [MemoryStore] is the reference
// single-process implementation. [RedisStore] keeps the same contract on a
// Redis keyspace so sessions survive the process (at the cost of a network
// round trip per operation).
//
// A store never validates that the owner identity still exists; that binding
// is fixed at issuance time.
package session
