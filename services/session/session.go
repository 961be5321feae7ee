package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"villadash/models"
)

// Session is one logged-in dashboard. It replaces the browser's stored
// token pair and cached user record, and is the TokenStore of the API
// client serving its requests.
type Session struct {
	ID string

	mu        sync.RWMutex
	access    string
	refresh   string
	user      *models.User
	expiresAt time.Time
	dirty     bool
	cleared   bool
}

// New starts an empty session with a fresh id.
func New() *Session {
	return &Session{ID: uuid.NewString()}
}

// Restore rebuilds a session read from a store.
func Restore(id, access, refresh string, user *models.User) *Session {
	return &Session{ID: id, access: access, refresh: refresh, user: user}
}

func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refresh
}

// SetTokens stores a new pair; an empty refresh keeps the current one.
func (s *Session) SetTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = access
	if refresh != "" {
		s.refresh = refresh
	}
	s.cleared = false
	s.dirty = true
}

// Clear drops the tokens and the user. The session must then be deleted.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = ""
	s.refresh = ""
	s.user = nil
	s.cleared = true
	s.dirty = true
}

func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) SetUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.dirty = true
}

// SetExpiry records when the refresh token stops working.
func (s *Session) SetExpiry(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expiresAt = t
}

func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// Authenticated reports whether both tokens are present.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access != "" && s.refresh != ""
}

// Dirty reports unsaved changes.
func (s *Session) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

func (s *Session) Cleared() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cleared
}

func (s *Session) markSaved() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = false
}
