// Package password derives and verifies salted argon2id credential hashes in
// PHC string format.
//
// The raw password is never stored; verification recomputes the hash with the
// parameters and salt embedded in the stored PHC string and compares in
// constant time. A malformed stored hash is reported as an error so callers
// can collapse it into a generic verification miss.
package password
