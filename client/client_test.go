package client

import (
	"context"
	"net/http/httptest"
	"testing"

	authgate "github.com/feliden/authgate"
	"github.com/feliden/authgate/httpapi"
)

func newTestServer(t *testing.T) *Client {
	t.Helper()

	cfg := authgate.DefaultConfig()
	cfg.Password.Memory = 8 * 1024
	cfg.Password.Time = 1
	cfg.Password.Parallelism = 1

	engine, err := authgate.New().WithConfig(cfg).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(engine.Close)

	srv := httptest.NewServer(httpapi.NewHandler(engine, nil))
	t.Cleanup(srv.Close)

	return New(srv.URL, srv.Client())
}

func TestClientRoundTrip(t *testing.T) {
	c := newTestServer(t)
	ctx := context.Background()

	up, err := c.SignUp(ctx, "alice", "secret")
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	if up.Status != "SUCCESS" {
		t.Fatalf("SignUp status = %q, want SUCCESS", up.Status)
	}

	in, err := c.SignIn(ctx, "alice", "secret")
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	if in.Status != "SUCCESS" || in.SessionToken == "" || in.UserUUID == "" {
		t.Fatalf("SignIn result = %+v, want populated success", in)
	}

	out, err := c.SignOut(ctx, in.SessionToken)
	if err != nil {
		t.Fatalf("SignOut failed: %v", err)
	}
	if out.Status != "SUCCESS" {
		t.Fatalf("SignOut status = %q, want SUCCESS", out.Status)
	}
}

func TestClientSignInFailure(t *testing.T) {
	c := newTestServer(t)

	in, err := c.SignIn(context.Background(), "ghost", "pw")
	if err != nil {
		t.Fatalf("SignIn transport error: %v", err)
	}
	if in.Status != "FAILURE" {
		t.Fatalf("SignIn status = %q, want FAILURE", in.Status)
	}
	if in.SessionToken != "" || in.UserUUID != "" {
		t.Fatalf("failure result must carry empty fields, got %+v", in)
	}
}

func TestClientHealth(t *testing.T) {
	c := newTestServer(t)

	if err := c.Health(context.Background()); err != nil {
		t.Fatalf("Health failed: %v", err)
	}
}

func TestClientTransportError(t *testing.T) {
	c := New("http://127.0.0.1:1", nil)

	if _, err := c.SignUp(context.Background(), "alice", "secret"); err == nil {
		t.Fatal("expected transport error")
	}
}
