// Package session owns the client's authentication token.
//
// A Session is created once at startup and handed to every component that
// needs the token (API client, guard, services). Reads are served from
// memory and never block on I/O; writes go through a Backend first so a
// token that was accepted is also persisted.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/WayleX/Beerter/internal/common"
)

// Store is the contract the guard and the API client depend on.
type Store interface {
	// Get returns the current token and whether one is present.
	Get() (string, bool)
	// Set persists a non-empty token, replacing any previous one.
	Set(ctx context.Context, token string) error
	// Clear removes the token. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}

// Backend persists the token between runs.
// Load returns "" when nothing is stored.
type Backend interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}

// Session is the process-wide Store implementation. It is safe for
// concurrent use.
type Session struct {
	mu      sync.RWMutex
	token   string
	backend Backend
}

var _ Store = (*Session)(nil)

// Open creates a Session primed with whatever token backend holds.
func Open(ctx context.Context, backend Backend) (*Session, error) {
	token, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return &Session{token: token, backend: backend}, nil
}

// NewEphemeral returns a Session that lives in memory only.
func NewEphemeral() *Session {
	return &Session{backend: NewMemoryBackend()}
}

func (s *Session) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// Authenticated reports whether a token is present. It says nothing about
// whether the remote side still accepts it.
func (s *Session) Authenticated() bool {
	_, ok := s.Get()
	return ok
}

// Set stores token. The in-memory value changes only after the backend
// accepted the write.
func (s *Session) Set(ctx context.Context, token string) error {
	if token == "" {
		return common.ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Save(ctx, token); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.token = token
	return nil
}

// Clear drops the token from memory first, then from the backend, so a
// failing backend still leaves the running client signed out.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if err := s.backend.Delete(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
