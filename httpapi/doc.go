// Package httpapi exposes the authentication engine as a JSON API over HTTP.
//
// [NewHandler] returns an [http.Handler] with three operation routes and a
// health probe:
//
//	POST /v1/signup   — JSON {"username":"...", "password":"..."}
//	POST /v1/signin   — JSON {"username":"...", "password":"..."}
//	POST /v1/signout  — JSON {"session_token":"..."}
//	GET  /healthz     — liveness probe
//
// Responses always carry a "status" field of "SUCCESS" or "FAILURE"; sign-in
// additionally carries "user_uuid" and "session_token", both empty on
// failure. An operation-level failure is still HTTP 200: the status code
// reports transport health, the body reports the outcome. That holds for
// undecodable and empty request bodies too: sign-up and sign-in report
// FAILURE, sign-out reports SUCCESS, never a 4xx.
//
// # What this package must NOT do
//
//   - Own the engine lifecycle — callers build and close it.
//   - Log credentials or session tokens.
package httpapi
