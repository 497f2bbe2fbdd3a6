// Package supabasetest provides an in-memory stand-in for the Management API auth
// config endpoint, for use with net/http/httptest.
package supabasetest

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Request is what the server saw on its last PATCH.
type Request struct {
	ProjectRef string
	Header     http.Header
	Body       []byte
	Payload    map[string]string
}

// Server echoes patched auth config back merged over a base config, like the real API.
type Server struct {
	Token string

	mu        sync.Mutex
	config    map[string]any
	requests  []Request
	status    int
	rawBody   []byte
	transform func(key, value string) string
}

// New creates a server that accepts the given bearer token.
func New(token string) *Server {
	return &Server{
		Token: token,
		config: map[string]any{
			"site_url":           "https://0nmcp.com",
			"mailer_autoconfirm": false,
		},
	}
}

// FailWith makes every PATCH answer with status and body.
func (s *Server) FailWith(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.rawBody = []byte(body)
}

// RespondRaw makes every PATCH answer 200 with a verbatim body.
func (s *Server) RespondRaw(body string) {
	s.FailWith(http.StatusOK, body)
}

// Rewrite alters stored values before they are echoed.
func (s *Server) Rewrite(fn func(key, value string) string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transform = fn
}

// StripFrom removes every occurrence of marker from the value stored under key.
func (s *Server) StripFrom(key, marker string) {
	s.Rewrite(func(k, v string) string {
		if k == key {
			return strings.ReplaceAll(v, marker, "")
		}
		return v
	})
}

// Requests returns the PATCH requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Handler returns the chi router serving the auth config routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Route("/v1/projects/{ref}/config/auth", func(r chi.Router) {
		r.Use(s.bearerAuth)
		r.Get("/", s.getConfig)
		r.Patch("/", s.patchConfig)
	})
	return r
}

func (s *Server) bearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" || token != s.Token {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) getConfig(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.config)
}

func (s *Server) patchConfig(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": err.Error()})
		return
	}

	var payload map[string]string
	if err := json.Unmarshal(body, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid JSON body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, Request{
		ProjectRef: chi.URLParam(r, "ref"),
		Header:     r.Header.Clone(),
		Body:       body,
		Payload:    payload,
	})

	if s.status != 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(s.status)
		_, _ = w.Write(s.rawBody)
		return
	}

	for k, v := range payload {
		if s.transform != nil {
			v = s.transform(k, v)
		}
		s.config[k] = v
	}
	writeJSON(w, http.StatusOK, s.config)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
