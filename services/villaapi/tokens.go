package villaapi

import "sync"

// MemoryTokens is a TokenStore kept in process memory, used by the CLI.
type MemoryTokens struct {
	mu      sync.RWMutex
	access  string
	refresh string
}

func NewMemoryTokens(access, refresh string) *MemoryTokens {
	return &MemoryTokens{access: access, refresh: refresh}
}

func (t *MemoryTokens) AccessToken() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.access
}

func (t *MemoryTokens) RefreshToken() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.refresh
}

// SetTokens keeps the current refresh token when refresh is empty.
func (t *MemoryTokens) SetTokens(access, refresh string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.access = access
	if refresh != "" {
		t.refresh = refresh
	}
}

func (t *MemoryTokens) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.access = ""
	t.refresh = ""
}
