package authgate

import (
	"context"
	"errors"
	"time"

	internalaudit "github.com/feliden/authgate/internal/audit"
)

// Engine composes the credential store and the session store into the three
// exposed operations: sign-up, sign-in, sign-out. It owns both stores for
// the lifetime of the process; nothing else mutates them.
//
// Engine instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Engine struct {
	config      Config
	credentials CredentialStore
	sessions    SessionStore
	audit       *internalaudit.Dispatcher
	metrics     *Metrics
}

// Close flushes and stops the audit dispatcher. The engine must not be used
// after Close.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// AuditDropped reports how many audit events were dropped under
// backpressure.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

func (e *Engine) ready() bool {
	return e != nil && e.credentials != nil && e.sessions != nil
}

// SignUp registers a new identity for the requested login name. Duplicate
// login names and hashing failures both surface as the same generic
// StatusFailure; the caller learns nothing beyond the binary outcome.
//
// SignUp does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) SignUp(ctx context.Context, req SignUpRequest) SignUpResponse {
	if !e.ready() {
		return SignUpResponse{Status: StatusFailure}
	}

	err := e.credentials.Register(ctx, req.LoginName, req.Password)
	switch {
	case err == nil:
		e.metricInc(MetricSignUpSuccess)
		e.emitAudit(ctx, auditEventSignUpSuccess, true, "", nil, func() map[string]string {
			return map[string]string{
				"login_name": req.LoginName,
			}
		})
		return SignUpResponse{Status: StatusSuccess}

	case errors.Is(err, ErrDuplicateIdentity):
		e.metricInc(MetricSignUpDuplicate)
		e.emitAudit(ctx, auditEventSignUpDuplicate, false, "", err, func() map[string]string {
			return map[string]string{
				"login_name": req.LoginName,
			}
		})
		return SignUpResponse{Status: StatusFailure}

	default:
		e.metricInc(MetricSignUpFailure)
		e.emitAudit(ctx, auditEventSignUpFailure, false, "", ErrHashingFailure, func() map[string]string {
			return map[string]string{
				"login_name": req.LoginName,
			}
		})
		return SignUpResponse{Status: StatusFailure}
	}
}

// SignIn verifies the supplied credentials and, on a match, issues a fresh
// session token bound to the matched identity. On any miss the response
// carries StatusFailure with empty IdentityID and Token; callers branch on
// emptiness, so the empty strings are part of the contract.
//
// The two store calls are sequential, not transactional: the credential
// store's lock is released before the session store's is taken, and the
// design assumes issuance against the in-memory backend cannot fail.
//
// SignIn does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) SignIn(ctx context.Context, req SignInRequest) SignInResponse {
	if !e.ready() {
		return SignInResponse{Status: StatusFailure}
	}

	start := time.Now()
	identityID, ok, err := e.credentials.Verify(ctx, req.LoginName, req.Password)
	if e.metrics.LatencyEnabled() {
		e.metrics.Observe(MetricVerifyLatency, time.Since(start))
	}

	if err != nil || !ok {
		// Unknown login name, wrong password, and backend faults collapse
		// into one signal so accounts cannot be enumerated.
		e.metricInc(MetricSignInFailure)
		e.emitAudit(ctx, auditEventSignInFailure, false, "", verifyFailureError(err), func() map[string]string {
			return map[string]string{
				"login_name": req.LoginName,
			}
		})
		return SignInResponse{Status: StatusFailure, IdentityID: "", Token: ""}
	}

	token, err := e.sessions.Issue(ctx, identityID)
	if err != nil {
		e.metricInc(MetricSignInFailure)
		e.emitAudit(ctx, auditEventSignInFailure, false, identityID, errSessionCreationFailed, nil)
		return SignInResponse{Status: StatusFailure, IdentityID: "", Token: ""}
	}

	e.metricInc(MetricSignInSuccess)
	e.metricInc(MetricSessionIssued)
	e.emitAudit(ctx, auditEventSignInSuccess, true, identityID, nil, func() map[string]string {
		return map[string]string{
			"login_name": req.LoginName,
		}
	})

	return SignInResponse{
		Status:     StatusSuccess,
		IdentityID: identityID,
		Token:      token,
	}
}

// SignOut revokes the presented token unconditionally and always reports
// StatusSuccess: sign-out is idempotent and never discloses whether the
// session existed. An empty or never-issued token is accepted.
//
// SignOut does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) SignOut(ctx context.Context, req SignOutRequest) SignOutResponse {
	if !e.ready() {
		return SignOutResponse{Status: StatusSuccess}
	}

	if err := e.sessions.Revoke(ctx, req.Token); err != nil {
		// The always-Success contract holds even when the backend faults;
		// the fault is still observable through audit and metrics.
		e.emitAudit(ctx, auditEventSignOut, false, "", errSessionInvalidationFailed, nil)
		return SignOutResponse{Status: StatusSuccess}
	}

	e.metricInc(MetricSignOut)
	e.metricInc(MetricSessionRevoked)
	e.emitAudit(ctx, auditEventSignOut, true, "", nil, nil)

	return SignOutResponse{Status: StatusSuccess}
}

// DeleteIdentity removes the identity record for identityID from both
// credential lookup paths. It is part of the store contract but is not
// exposed over the RPC boundary. Deleting an unknown id is a no-op. Sessions
// already issued to the identity stay live until revoked; the session store
// never re-validates its owners.
func (e *Engine) DeleteIdentity(ctx context.Context, identityID string) error {
	if !e.ready() {
		return ErrEngineNotReady
	}

	if err := e.credentials.Remove(ctx, identityID); err != nil {
		e.emitAudit(ctx, auditEventIdentityDeleted, false, identityID, ErrCredentialBackendUnavailable, nil)
		return err
	}

	e.metricInc(MetricIdentityDeleted)
	e.emitAudit(ctx, auditEventIdentityDeleted, true, identityID, nil, nil)

	return nil
}

// verifyFailureError keeps the audit error code accurate: a verification
// miss carries the invalid-credentials code, a backend fault carries the
// unavailable code.
func verifyFailureError(err error) error {
	if err != nil {
		return ErrCredentialBackendUnavailable
	}
	return errInvalidCredentials
}

var (
	errInvalidCredentials        = errors.New("invalid credentials")
	errSessionCreationFailed     = errors.New("session creation failed")
	errSessionInvalidationFailed = errors.New("session invalidation failed")
)
