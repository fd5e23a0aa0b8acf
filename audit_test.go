package authgate

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type countingSink struct {
	count atomic.Int64
}

func (s *countingSink) Emit(context.Context, AuditEvent) {
	s.count.Add(1)
}

func (s *countingSink) Count() int64 {
	return s.count.Load()
}

type captureSink struct {
	events chan AuditEvent
}

func newCaptureSink(buffer int) *captureSink {
	if buffer <= 0 {
		buffer = 1
	}
	return &captureSink{
		events: make(chan AuditEvent, buffer),
	}
}

func (s *captureSink) Emit(ctx context.Context, event AuditEvent) {
	select {
	case s.events <- event:
	case <-ctx.Done():
	}
}

func newAuditTestEngine(t *testing.T, sink AuditSink) *Engine {
	t.Helper()

	cfg := defaultConfig()
	cfg.Password.Memory = 8 * 1024
	cfg.Password.Time = 1
	cfg.Password.Parallelism = 1
	cfg.Audit.Enabled = true
	cfg.Audit.BufferSize = 64

	engine, err := New().WithConfig(cfg).WithAuditSink(sink).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(engine.Close)

	return engine
}

func waitEvent(t *testing.T, sink *captureSink) AuditEvent {
	t.Helper()

	select {
	case event := <-sink.events:
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for audit event")
		return AuditEvent{}
	}
}

func TestAuditSignUpEmitsEvent(t *testing.T) {
	sink := newCaptureSink(8)
	engine := newAuditTestEngine(t, sink)

	mustSignUp(t, engine, "alice", "secret")

	event := waitEvent(t, sink)
	if event.EventType != auditEventSignUpSuccess {
		t.Fatalf("event type = %q, want %q", event.EventType, auditEventSignUpSuccess)
	}
	if !event.Success {
		t.Fatal("expected success event")
	}
	if event.Metadata["login_name"] != "alice" {
		t.Fatalf("metadata login_name = %q, want alice", event.Metadata["login_name"])
	}
	if event.Timestamp.IsZero() {
		t.Fatal("expected a populated timestamp")
	}
}

func TestAuditSignInFailureCarriesErrorCode(t *testing.T) {
	sink := newCaptureSink(8)
	engine := newAuditTestEngine(t, sink)

	engine.SignIn(context.Background(), SignInRequest{LoginName: "ghost", Password: "pw"})

	event := waitEvent(t, sink)
	if event.EventType != auditEventSignInFailure {
		t.Fatalf("event type = %q, want %q", event.EventType, auditEventSignInFailure)
	}
	if event.Success {
		t.Fatal("expected failure event")
	}
	if event.Error != string(auditErrInvalidCredentials) {
		t.Fatalf("error code = %q, want %q", event.Error, auditErrInvalidCredentials)
	}
}

func TestAuditEventsNeverContainTokens(t *testing.T) {
	sink := newCaptureSink(8)
	engine := newAuditTestEngine(t, sink)

	mustSignUp(t, engine, "alice", "secret")
	in := engine.SignIn(context.Background(), SignInRequest{LoginName: "alice", Password: "secret"})
	engine.SignOut(context.Background(), SignOutRequest{Token: in.Token})

	for i := 0; i < 3; i++ {
		event := waitEvent(t, sink)
		for k, v := range event.Metadata {
			if v == in.Token || v == "secret" {
				t.Fatalf("metadata %q leaked a secret value", k)
			}
		}
	}
}

func TestAuditDisabledEmitsNothing(t *testing.T) {
	sink := &countingSink{}

	cfg := defaultConfig()
	cfg.Password.Memory = 8 * 1024
	cfg.Password.Time = 1
	cfg.Password.Parallelism = 1
	cfg.Audit.Enabled = false

	engine, err := New().WithConfig(cfg).WithAuditSink(sink).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	mustSignUp(t, engine, "alice", "secret")
	engine.Close()

	if got := sink.Count(); got != 0 {
		t.Fatalf("expected no events with audit disabled, got %d", got)
	}
}

func TestAuditCloseFlushesBufferedEvents(t *testing.T) {
	sink := &countingSink{}
	engine := newAuditTestEngine(t, sink)

	mustSignUp(t, engine, "alice", "secret")
	engine.SignIn(context.Background(), SignInRequest{LoginName: "alice", Password: "secret"})
	engine.SignOut(context.Background(), SignOutRequest{Token: "x"})

	engine.Close()

	if got := sink.Count(); got != 3 {
		t.Fatalf("expected 3 flushed events, got %d", got)
	}
}
