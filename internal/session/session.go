package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/erp-admin-client/internal/api"
	"github.com/spec-kit/erp-admin-client/internal/auth"
	"github.com/spec-kit/erp-admin-client/internal/domain"
	"github.com/spec-kit/erp-admin-client/internal/events"
	"github.com/spec-kit/erp-admin-client/internal/tokenstore"
)

// Status identifies the session lifecycle state.
type Status int

const (
	StatusAnonymous Status = iota
	StatusAuthenticating
	StatusAuthenticated
	StatusAuthFailed
)

func (s Status) String() string {
	switch s {
	case StatusAuthenticating:
		return "authenticating"
	case StatusAuthenticated:
		return "authenticated"
	case StatusAuthFailed:
		return "auth_failed"
	default:
		return "anonymous"
	}
}

// State is an immutable snapshot of the session. IsAuthenticated true
// always implies User is non-nil.
type State struct {
	Status          Status
	User            *domain.Profile
	IsAuthenticated bool
	Loading         bool
	Err             error
}

// Manager owns the session state machine. It is constructed explicitly
// and injected wherever session awareness is needed; there is no
// package-level singleton.
type Manager struct {
	mu         sync.Mutex
	state      State
	observers  []func(State)
	store      tokenstore.Store
	api        *api.Client
	logger     *zap.Logger
	dispatcher events.Dispatcher
}

// NewManager builds a manager starting in the anonymous state.
// dispatcher may be nil when nobody observes transitions.
func NewManager(store tokenstore.Store, apiClient *api.Client, logger *zap.Logger, dispatcher events.Dispatcher) *Manager {
	return &Manager{
		state:      State{Status: StatusAnonymous},
		store:      store,
		api:        apiClient,
		logger:     logger,
		dispatcher: dispatcher,
	}
}

// State returns the current snapshot.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Subscribe registers an observer invoked with the new snapshot after
// every state transition. Observers run synchronously on the
// transitioning goroutine and must not call back into the manager.
func (m *Manager) Subscribe(observer func(State)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, observer)
}

// Login exchanges credentials for tokens and loads the caller's
// profile. The session reaches the authenticated state only when both
// calls succeed; any partial failure lands in auth_failed with the
// server's error attached. Tokens already persisted by a partially
// successful login are left in place.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.transition(ctx, State{Status: StatusAuthenticating, Loading: true}, events.EventSessionAuthenticating)

	pair, err := m.api.Auth.ObtainToken(ctx, email, password)
	if err != nil {
		m.logger.Warn("login: token exchange failed", zap.Error(err))
		m.transition(ctx, State{Status: StatusAuthFailed, Err: err}, events.EventSessionAuthFailed)
		return err
	}

	if err := m.store.Save(ctx, pair); err != nil {
		m.logger.Error("login: persisting tokens failed", zap.Error(err))
		m.transition(ctx, State{Status: StatusAuthFailed, Err: err}, events.EventSessionAuthFailed)
		return err
	}

	profile, err := m.api.Profiles.Me(ctx)
	if err != nil {
		m.logger.Warn("login: profile fetch failed", zap.Error(err))
		m.transition(ctx, State{Status: StatusAuthFailed, Err: err}, events.EventSessionAuthFailed)
		return err
	}

	m.logger.Info("session authenticated",
		zap.String("user", profile.Email), zap.String("role", string(profile.Role)))
	m.transition(ctx, State{Status: StatusAuthenticated, User: profile, IsAuthenticated: true}, events.EventSessionAuthenticated)
	return nil
}

// Rehydrate restores the session from persisted tokens at process
// start. A missing, malformed, or expired token leaves the session
// anonymous; a valid one is confirmed by fetching the profile.
func (m *Manager) Rehydrate(ctx context.Context) error {
	pair, ok, err := m.store.Read(ctx)
	if err != nil {
		return err
	}
	if !ok {
		m.transition(ctx, State{Status: StatusAnonymous}, events.EventSessionCleared)
		return nil
	}

	decoded, err := auth.Decode(pair.Access)
	if err != nil || !decoded.ValidAt(time.Now()) {
		if err != nil {
			m.logger.Warn("rehydrate: stored token invalid", zap.Error(err))
		} else {
			m.logger.Info("rehydrate: stored token expired")
		}
		m.clearToAnonymous(ctx)
		return nil
	}

	profile, err := m.api.Profiles.Me(ctx)
	if err != nil {
		m.logger.Warn("rehydrate: profile fetch failed", zap.Error(err))
		m.clearToAnonymous(ctx)
		return nil
	}

	m.logger.Info("session rehydrated", zap.String("user", profile.Email))
	m.transition(ctx, State{Status: StatusAuthenticated, User: profile, IsAuthenticated: true}, events.EventSessionAuthenticated)
	return nil
}

// Logout clears persisted tokens and resets the session. Callable from
// any state and idempotent.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.store.Clear(ctx)
	m.transition(ctx, State{Status: StatusAnonymous}, events.EventSessionCleared)
	return err
}

// Invalidate resets the in-memory session after the HTTP core has
// already discarded the stored tokens (failed refresh).
func (m *Manager) Invalidate(ctx context.Context) {
	m.logger.Info("session invalidated after failed refresh")
	m.transition(ctx, State{Status: StatusAnonymous}, events.EventAuthExpired)
}

func (m *Manager) clearToAnonymous(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.logger.Error("failed to clear token store", zap.Error(err))
	}
	m.transition(ctx, State{Status: StatusAnonymous}, events.EventSessionCleared)
}

func (m *Manager) transition(ctx context.Context, next State, eventType events.EventType) {
	m.mu.Lock()
	m.state = next
	observers := append([]func(State){}, m.observers...)
	m.mu.Unlock()

	for _, observer := range observers {
		observer(next)
	}

	if m.dispatcher != nil {
		_ = m.dispatcher.Publish(ctx, events.Event{
			Type:      eventType,
			Timestamp: time.Now(),
			Payload:   next.Status.String(),
		})
	}
}
