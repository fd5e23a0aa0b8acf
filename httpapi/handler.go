package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	authgate "github.com/feliden/authgate"
)

// Engine defines the operations the HTTP layer needs from the core.
type Engine interface {
	SignUp(ctx context.Context, req authgate.SignUpRequest) authgate.SignUpResponse
	SignIn(ctx context.Context, req authgate.SignInRequest) authgate.SignInResponse
	SignOut(ctx context.Context, req authgate.SignOutRequest) authgate.SignOutResponse
}

// Server holds the handler dependencies.
type Server struct {
	engine Engine
	logger *slog.Logger
}

type credentialsBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type signOutBody struct {
	SessionToken string `json:"session_token"`
}

type statusBody struct {
	Status string `json:"status"`
}

type signInBody struct {
	Status       string `json:"status"`
	UserUUID     string `json:"user_uuid"`
	SessionToken string `json:"session_token"`
}

// NewHandler creates the HTTP handler for the engine. A nil logger disables
// request logging.
func NewHandler(engine Engine, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Server{
		engine: engine,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Post("/v1/signup", s.handleSignUp)
	r.Post("/v1/signin", s.handleSignIn)
	r.Post("/v1/signout", s.handleSignOut)
	r.Get("/healthz", s.handleHealth)

	return r
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var body credentialsBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		// A body we cannot decode is an operation failure, not a transport
		// error: the contract is that every call gets a well-formed
		// status response.
		s.logger.Warn("signup: undecodable request body", "error", err)
		writeJSON(w, statusBody{Status: authgate.StatusFailure.String()})
		return
	}

	res := s.engine.SignUp(r.Context(), authgate.SignUpRequest{
		LoginName: body.Username,
		Password:  body.Password,
	})
	s.logger.Info("signup", "username", body.Username, "status", res.Status.String())

	writeJSON(w, statusBody{Status: res.Status.String()})
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var body credentialsBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.logger.Warn("signin: undecodable request body", "error", err)
		writeJSON(w, signInBody{Status: authgate.StatusFailure.String()})
		return
	}

	res := s.engine.SignIn(r.Context(), authgate.SignInRequest{
		LoginName: body.Username,
		Password:  body.Password,
	})
	s.logger.Info("signin", "username", body.Username, "status", res.Status.String())

	writeJSON(w, signInBody{
		Status:       res.Status.String(),
		UserUUID:     res.IdentityID,
		SessionToken: res.Token,
	})
}

func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	var body signOutBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		// Sign-out is idempotent and always succeeds; an undecodable body
		// is treated the same as a never-issued token.
		s.logger.Warn("signout: undecodable request body", "error", err)
		writeJSON(w, statusBody{Status: authgate.StatusSuccess.String()})
		return
	}

	res := s.engine.SignOut(r.Context(), authgate.SignOutRequest{
		Token: body.SessionToken,
	})
	s.logger.Info("signout", "status", res.Status.String())

	writeJSON(w, statusBody{Status: res.Status.String()})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, statusBody{Status: authgate.StatusSuccess.String()})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
