// Package session owns the in-memory authentication state of the client:
// the current token and the identity it was issued for. The two are set
// and cleared together; a session with only one half is invalid.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jonathan/jobtrack/internal/types"
)

// Store abstracts the durable credential store the manager synchronizes
// with. Only the manager writes to it; other components go through the
// manager so session changes cannot race feature views.
type Store interface {
	Save(token string, identity types.Identity) error
	Load() (token string, identity types.Identity, ok bool)
	Clear() error
}

// Manager holds the session state machine: Anonymous (no token) or
// Authenticated (token + identity). Safe for concurrent use; the data
// client's unauthorized handling may log out while a command reads state.
type Manager struct {
	mu       sync.Mutex
	store    Store
	token    string
	identity types.Identity
}

// NewManager constructs a manager and initializes it from the store:
// a loadable pair enters Authenticated, anything else starts Anonymous.
func NewManager(store Store) *Manager {
	m := &Manager{store: store}
	if token, identity, ok := store.Load(); ok {
		m.token = token
		m.identity = identity
	}
	return m
}

// Login transitions to Authenticated, replacing any prior session.
// The pair is persisted first; if the store rejects it the in-memory
// state is left untouched and the error returned.
func (m *Manager) Login(token string, identity types.Identity) error {
	if token == "" {
		return fmt.Errorf("login requires a token")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Save(token, identity); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	m.token = token
	m.identity = identity
	return nil
}

// Logout transitions to Anonymous, clearing the store before memory.
// Logging out while Anonymous is a no-op, not an error.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token == "" {
		return nil
	}
	if err := m.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear persisted session: %w", err)
	}
	m.token = ""
	m.identity = types.Identity{}
	return nil
}

// IsAuthenticated reports whether a token is present. It is derived on
// every call; no separate flag is stored that could diverge from the
// token itself.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token != ""
}

// Token returns the current token, or empty when Anonymous.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Identity returns the current identity. ok is false when Anonymous.
func (m *Manager) Identity() (types.Identity, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.identity, m.token != ""
}

// TokenExpiresAt inspects the current token for a JWT exp claim without
// verifying the signature. Opaque (non-JWT) tokens and tokens without an
// exp claim report ok=false. The reading is advisory: expiry is enforced
// by the server on the next request, not proactively by the client.
func (m *Manager) TokenExpiresAt() (time.Time, bool) {
	m.mu.Lock()
	token := m.token
	m.mu.Unlock()

	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
