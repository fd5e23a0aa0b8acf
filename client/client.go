package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client talks to an authgate HTTP server.
//
// Client instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Client struct {
	baseURL string
	http    *http.Client
}

// SignUpResult carries the outcome of a sign-up call.
type SignUpResult struct {
	Status string `json:"status"`
}

// SignInResult carries the outcome of a sign-in call. UserUUID and
// SessionToken are empty when Status is FAILURE.
type SignInResult struct {
	Status       string `json:"status"`
	UserUUID     string `json:"user_uuid"`
	SessionToken string `json:"session_token"`
}

// SignOutResult carries the outcome of a sign-out call.
type SignOutResult struct {
	Status string `json:"status"`
}

// New creates a client for the server at baseURL, e.g. "http://localhost:50051".
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// SignUp registers a new identity.
func (c *Client) SignUp(ctx context.Context, username, password string) (SignUpResult, error) {
	var out SignUpResult
	err := c.post(ctx, "/v1/signup", map[string]string{
		"username": username,
		"password": password,
	}, &out)
	return out, err
}

// SignIn verifies credentials and returns a session token on success.
func (c *Client) SignIn(ctx context.Context, username, password string) (SignInResult, error) {
	var out SignInResult
	err := c.post(ctx, "/v1/signin", map[string]string{
		"username": username,
		"password": password,
	}, &out)
	return out, err
}

// SignOut revokes a session token.
func (c *Client) SignOut(ctx context.Context, sessionToken string) (SignOutResult, error) {
	var out SignOutResult
	err := c.post(ctx, "/v1/signout", map[string]string{
		"session_token": sessionToken,
	}, &out)
	return out, err
}

// Health probes the server's liveness endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("health check: unexpected status %d", res.StatusCode)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body map[string]string, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", path, res.StatusCode)
	}

	return json.NewDecoder(res.Body).Decode(out)
}
