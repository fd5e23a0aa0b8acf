// Package credential provides the reference in-memory credential store: the
// mapping from login name to salted credential hash and identity id.
//
// The store keeps two lookup structures over the same record set, one keyed
// by login name (sign-in verification) and one keyed by identity id
// (deletion). Every insert and every removal goes through a single path that
// touches both maps under one lock, so a record can never be present in one
// map and absent from the other.
package credential
