package tokenstore

import (
	"context"
	"sync"

	"github.com/spec-kit/erp-admin-client/internal/domain"
)

// Fixed persistence keys shared by every backend.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

// Store persists the session token pair across process restarts.
// Backends apply no expiry of their own. Multiple processes sharing one
// store race last-writer-wins; no locking is attempted across them.
type Store interface {
	// Save persists both tokens.
	Save(ctx context.Context, pair domain.TokenPair) error
	// Read returns the stored pair. ok is false when no access token
	// is present.
	Read(ctx context.Context) (pair domain.TokenPair, ok bool, err error)
	// Clear removes both entries unconditionally.
	Clear(ctx context.Context) error
}

// Memory is an in-process Store used by tests and short-lived tooling.
type Memory struct {
	mu   sync.Mutex
	pair domain.TokenPair
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Save(_ context.Context, pair domain.TokenPair) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pair = pair
	return nil
}

func (m *Memory) Read(_ context.Context) (domain.TokenPair, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pair, m.pair.Access != "", nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pair = domain.TokenPair{}
	return nil
}
