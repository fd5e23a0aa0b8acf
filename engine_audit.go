package authgate

import (
	"context"
	"errors"
	"time"

	internalaudit "github.com/feliden/authgate/internal/audit"
)

const (
	auditEventSignUpSuccess   = "signup_success"
	auditEventSignUpDuplicate = "signup_duplicate"
	auditEventSignUpFailure   = "signup_failure"
	auditEventSignInSuccess   = "signin_success"
	auditEventSignInFailure   = "signin_failure"
	auditEventSignOut         = "signout"
	auditEventIdentityDeleted = "identity_deleted"
)

// AuditErrorCode defines a public type used by authgate APIs.
//
// AuditErrorCode instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditErrorCode string

const (
	auditErrDuplicate             AuditErrorCode = "duplicate"
	auditErrHashingFailure        AuditErrorCode = "hashing_failure"
	auditErrInvalidCredentials    AuditErrorCode = "invalid_credentials"
	auditErrSessionCreationFailed AuditErrorCode = "session_creation_failed"
	auditErrSessionInvalidation   AuditErrorCode = "session_invalidation_failed"
	auditErrBackendUnavailable    AuditErrorCode = "backend_unavailable"
	auditErrInternal              AuditErrorCode = "internal"
)

// emitAudit forwards a structured event to the dispatcher. metaFn is only
// invoked when audit is enabled so callers can build metadata lazily.
func (e *Engine) emitAudit(
	ctx context.Context,
	eventType string,
	success bool,
	identityID string,
	err error,
	metaFn func() map[string]string,
) {
	if e == nil || e.audit == nil {
		return
	}

	event := internalaudit.Event{
		Timestamp:  time.Now(),
		EventType:  eventType,
		IdentityID: identityID,
		Success:    success,
	}
	if err != nil {
		event.Error = string(auditErrorCode(err))
	}
	if metaFn != nil {
		event.Metadata = metaFn()
	}

	e.audit.Emit(ctx, event)
}

func auditErrorCode(err error) AuditErrorCode {
	switch {
	case errors.Is(err, ErrDuplicateIdentity):
		return auditErrDuplicate
	case errors.Is(err, ErrHashingFailure):
		return auditErrHashingFailure
	case errors.Is(err, ErrSessionBackendUnavailable),
		errors.Is(err, ErrCredentialBackendUnavailable):
		return auditErrBackendUnavailable
	case errors.Is(err, errInvalidCredentials):
		return auditErrInvalidCredentials
	case errors.Is(err, errSessionCreationFailed):
		return auditErrSessionCreationFailed
	case errors.Is(err, errSessionInvalidationFailed):
		return auditErrSessionInvalidation
	default:
		return auditErrInternal
	}
}
