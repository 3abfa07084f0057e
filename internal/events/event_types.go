package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	// EventSessionAuthenticating fires when a login attempt starts.
	EventSessionAuthenticating EventType = "session_authenticating"
	// EventSessionAuthenticated fires when a session reaches the
	// authenticated state, via login or rehydration.
	EventSessionAuthenticated EventType = "session_authenticated"
	// EventSessionAuthFailed fires when a login attempt fails.
	EventSessionAuthFailed EventType = "session_auth_failed"
	// EventSessionCleared fires on logout or rehydration failure.
	EventSessionCleared EventType = "session_cleared"
	// EventAuthExpired fires when a token refresh fails and the
	// stored credentials have been discarded.
	EventAuthExpired EventType = "auth_expired"
)

// Event represents a session lifecycle event.
type Event struct {
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}
