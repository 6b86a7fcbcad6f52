package services

import (
	"sync"
	"time"

	"github.com/bipuldey19/hungrypanda-handler/entity"

	"github.com/google/uuid"
)

// SessionStore keeps live admin sessions in memory, keyed by the id
// carried in the signed cookie. The mutex exists because the HTTP
// server handles concurrent requests; there is no other coordination.
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*entity.Session
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*entity.Session),
	}
}

func (st *SessionStore) Create() *entity.Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := entity.NewSession(uuid.New().String(), st.now())
	st.sessions[s.ID] = s
	return s
}

// Get returns the session only while it is still within its ttl; an
// expired session is dropped and the caller must log in again.
func (st *SessionStore) Get(id string) (*entity.Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	if s.Expired(st.now(), st.ttl) {
		delete(st.sessions, id)
		return nil, false
	}
	return s, true
}

func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

func (st *SessionStore) SetUIState(sessionID string, itemID uint, state entity.ItemUIState) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if s, ok := st.sessions[sessionID]; ok {
		if state == entity.UIStateNone {
			delete(s.UIState, itemID)
		} else {
			s.UIState[itemID] = state
		}
	}
}

// UIStates returns a copy safe to read outside the store's lock.
func (st *SessionStore) UIStates(sessionID string) map[uint]entity.ItemUIState {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[sessionID]
	if !ok {
		return nil
	}
	out := make(map[uint]entity.ItemUIState, len(s.UIState))
	for id, state := range s.UIState {
		out[id] = state
	}
	return out
}

func (st *SessionStore) UIState(sessionID string, itemID uint) entity.ItemUIState {
	st.mu.Lock()
	defer st.mu.Unlock()

	if s, ok := st.sessions[sessionID]; ok {
		return s.UIState[itemID]
	}
	return entity.UIStateNone
}

// ToggleDetails flips the expanded view for one item and returns the
// resulting state. Toggling away a pending delete confirmation is
// deliberate: opening details cancels the confirm step.
func (st *SessionStore) ToggleDetails(sessionID string, itemID uint) entity.ItemUIState {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[sessionID]
	if !ok {
		return entity.UIStateNone
	}
	if s.UIState[itemID] == entity.UIStateDetails {
		delete(s.UIState, itemID)
		return entity.UIStateNone
	}
	s.UIState[itemID] = entity.UIStateDetails
	return entity.UIStateDetails
}
