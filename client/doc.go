// Package client is a small HTTP client for the authgate JSON API.
//
// It mirrors the three engine operations plus the health probe. Transport
// and decoding problems surface as errors; operation-level failures surface
// through the Status field of the returned result, matching the engine's
// total-function contract.
package client
