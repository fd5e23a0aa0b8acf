// Package internal holds small primitives shared across the engine that are
// never part of the public API, currently session token generation.
package internal
