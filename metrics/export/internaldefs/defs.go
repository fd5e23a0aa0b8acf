package internaldefs

import (
	authgate "github.com/feliden/authgate"
)

// CounterDef defines a public type used by authgate APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   authgate.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by authgate APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   authgate.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the authentication engine.
var CounterDefs = []CounterDef{
	{ID: authgate.MetricSignUpSuccess, Name: "authgate_signup_success_total", Help: "Successful sign-up operations."},
	{ID: authgate.MetricSignUpDuplicate, Name: "authgate_signup_duplicate_total", Help: "Sign-up attempts rejected as duplicate."},
	{ID: authgate.MetricSignUpFailure, Name: "authgate_signup_failure_total", Help: "Sign-up attempts failed for other reasons."},
	{ID: authgate.MetricSignInSuccess, Name: "authgate_signin_success_total", Help: "Successful sign-in operations."},
	{ID: authgate.MetricSignInFailure, Name: "authgate_signin_failure_total", Help: "Failed sign-in attempts."},
	{ID: authgate.MetricSignOut, Name: "authgate_signout_total", Help: "Sign-out operations."},
	{ID: authgate.MetricSessionIssued, Name: "authgate_session_issued_total", Help: "Issued session tokens."},
	{ID: authgate.MetricSessionRevoked, Name: "authgate_session_revoked_total", Help: "Revoked session tokens."},
	{ID: authgate.MetricIdentityDeleted, Name: "authgate_identity_deleted_total", Help: "Deleted identity records."},
}

// HistogramDefs is an exported constant or variable used by the authentication engine.
var HistogramDefs = []HistogramDef{
	{ID: authgate.MetricVerifyLatency, Name: "authgate_verify_latency_seconds", Help: "Credential verification latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the authentication engine.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the authentication engine.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets widens a raw snapshot slice to the fixed bucket array.
//
// NormalizeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts to cumulative counts.
//
// CumulativeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
