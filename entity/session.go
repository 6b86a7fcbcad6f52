package entity

import "time"

// ItemUIState is the transient per-item UI state kept in the session.
// An item is in exactly one state at a time, so a pending delete
// confirmation can never leak across items.
type ItemUIState uint8

const (
	UIStateNone ItemUIState = iota
	UIStateDetails
	UIStateConfirmDelete
)

func (s ItemUIState) String() string {
	switch s {
	case UIStateDetails:
		return "details"
	case UIStateConfirmDelete:
		return "confirm_delete"
	default:
		return "none"
	}
}

// Session is the explicit admin session object. It never touches the
// database; the signed cookie is its only external persistence.
type Session struct {
	ID      string
	LoginAt time.Time
	UIState map[uint]ItemUIState
}

func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:      id,
		LoginAt: now,
		UIState: make(map[uint]ItemUIState),
	}
}

// Expired reports whether the login is older than ttl.
func (s *Session) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.LoginAt) > ttl
}
