package session

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"villadash/constants"
	"villadash/models"
)

var ErrNotFound = stderrors.New("session not found")

// Store persists sessions between dashboard requests.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Load(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// ExpiryFunc reads the expiry of a refresh token.
type ExpiryFunc func(refreshToken string) (time.Time, bool)

type RedisStoreOptions struct {
	Client *redis.Client
	TTL    time.Duration
	Expiry ExpiryFunc
}

// RedisStore keeps each session in a hash under session:<id> whose fields
// carry the same names as the browser storage keys.
type RedisStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	expiry ExpiryFunc
}

func NewRedisStore(opts RedisStoreOptions) *RedisStore {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = constants.DefaultSessionTTL
	}
	return &RedisStore{rdb: opts.Client, ttl: ttl, expiry: opts.Expiry}
}

func key(id string) string {
	return constants.SessionPrefix + id
}

func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	if !s.Authenticated() {
		return r.Delete(ctx, s.ID)
	}

	fields := map[string]interface{}{
		constants.StorageAccessToken:  s.AccessToken(),
		constants.StorageRefreshToken: s.RefreshToken(),
	}
	if user := s.User(); user != nil {
		data, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("encode session user: %w", err)
		}
		fields[constants.StorageUser] = string(data)
	}

	ttl := ttlFor(s, r.ttl, r.expiry)
	pipe := r.rdb.TxPipeline()
	pipe.Del(ctx, key(s.ID))
	pipe.HSet(ctx, key(s.ID), fields)
	pipe.Expire(ctx, key(s.ID), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.markSaved()
	return nil
}

func (r *RedisStore) Load(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	values, err := r.rdb.HGetAll(ctx, key(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if len(values) == 0 {
		return nil, ErrNotFound
	}

	var user *models.User
	if raw := values[constants.StorageUser]; raw != "" {
		user = &models.User{}
		if err := json.Unmarshal([]byte(raw), user); err != nil {
			user = nil
		}
	}
	s := Restore(id, values[constants.StorageAccessToken], values[constants.StorageRefreshToken], user)
	if r.expiry != nil {
		if exp, ok := r.expiry(s.RefreshToken()); ok {
			s.SetExpiry(exp)
		}
	}
	return s, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.rdb.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func ttlFor(s *Session, fallback time.Duration, expiry ExpiryFunc) time.Duration {
	if expiry != nil {
		if exp, ok := expiry(s.RefreshToken()); ok {
			s.SetExpiry(exp)
		}
	}
	if exp := s.ExpiresAt(); !exp.IsZero() {
		if ttl := time.Until(exp); ttl > 0 {
			return ttl
		}
	}
	return fallback
}

// MemoryStore keeps sessions in process memory.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
	ttl      time.Duration
}

type memoryEntry struct {
	access, refresh string
	user            *models.User
	expires         time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = constants.DefaultSessionTTL
	}
	return &MemoryStore{sessions: make(map[string]memoryEntry), ttl: ttl}
}

func (m *MemoryStore) Save(ctx context.Context, s *Session) error {
	if !s.Authenticated() {
		return m.Delete(ctx, s.ID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = memoryEntry{
		access:  s.AccessToken(),
		refresh: s.RefreshToken(),
		user:    s.User(),
		expires: time.Now().Add(ttlFor(s, m.ttl, nil)),
	}
	s.markSaved()
	return nil
}

func (m *MemoryStore) Load(ctx context.Context, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if time.Now().After(e.expires) {
		delete(m.sessions, id)
		return nil, ErrNotFound
	}
	return Restore(id, e.access, e.refresh, e.user), nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
