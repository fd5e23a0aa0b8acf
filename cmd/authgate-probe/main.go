// Command authgate-probe exercises a running authgated server end to end
// every three seconds: it registers a random throwaway user, signs in, and
// signs the session out again, logging each cycle's outcome. It is meant as
// a liveness probe that verifies the full auth path instead of just the
// health endpoint.
//
// The target server comes from AUTHGATE_SERVICE_ADDR (default
// "http://localhost:50051").
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/feliden/authgate/client"
)

const probeInterval = 3 * time.Second

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	addr := os.Getenv("AUTHGATE_SERVICE_ADDR")
	if addr == "" {
		addr = "http://localhost:50051"
	}

	c := client.New(addr, &http.Client{Timeout: probeInterval})
	logger.Info("probing", "addr", addr, "interval", probeInterval.String())

	ticker := time.NewTicker(probeInterval)
	defer ticker.Stop()

	for ; ; <-ticker.C {
		probe(logger, c)
	}
}

func probe(logger *slog.Logger, c *client.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), probeInterval)
	defer cancel()

	// Random credentials so repeated cycles never collide with each other
	// or with real users.
	username := uuid.NewString()
	password := uuid.NewString()

	start := time.Now()

	up, err := c.SignUp(ctx, username, password)
	if err != nil {
		logger.Error("signup", "error", err)
		return
	}
	if up.Status != "SUCCESS" {
		logger.Error("signup", "status", up.Status)
		return
	}

	in, err := c.SignIn(ctx, username, password)
	if err != nil {
		logger.Error("signin", "error", err)
		return
	}
	if in.Status != "SUCCESS" || in.SessionToken == "" {
		logger.Error("signin", "status", in.Status)
		return
	}

	out, err := c.SignOut(ctx, in.SessionToken)
	if err != nil {
		logger.Error("signout", "error", err)
		return
	}
	if out.Status != "SUCCESS" {
		logger.Error("signout", "status", out.Status)
		return
	}

	logger.Info("cycle ok", "user", username, "elapsed", time.Since(start).String())
}
