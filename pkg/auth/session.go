package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

const sessionCookieName = "agency_session"

// SessionCookieName returns the cookie carrying the session token.
func SessionCookieName() string {
	return sessionCookieName
}

// DefaultSessionTTL is how long a session lives without an explicit logout.
const DefaultSessionTTL = 24 * time.Hour

// Session is the server-held record behind a client's opaque session token.
type Session struct {
	AdminID   string
	Name      string
	ExpiresAt time.Time
}

// GenerateSessionToken returns a 64-char hex token from 32 random bytes.
func GenerateSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("auth: token generation: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// MemoryStore is a process-held token→Session map. Sessions are created on
// login, destroyed on logout, and swept after expiry by a background loop.
type MemoryStore struct {
	ttl      time.Duration
	mu       sync.Mutex
	sessions map[string]Session
}

// NewMemoryStore creates a MemoryStore with the given TTL and starts the
// expiry sweep. A non-positive ttl falls back to DefaultSessionTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	s := &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]Session),
	}
	go s.sweepLoop()
	return s
}

// Create stores a new session for the admin and returns its opaque token.
func (s *MemoryStore) Create(adminID, name string) (string, error) {
	token, err := GenerateSessionToken()
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.sessions[token] = Session{
		AdminID:   adminID,
		Name:      name,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()
	return token, nil
}

// Get returns the session for token. Expired sessions are removed and
// reported as absent.
func (s *MemoryStore) Get(token string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return Session{}, false
	}
	if time.Now().After(sess.ExpiresAt) {
		delete(s.sessions, token)
		return Session{}, false
	}
	return sess, true
}

// Delete destroys the session unconditionally. Deleting an unknown token is a no-op.
func (s *MemoryStore) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// sweepLoop periodically removes expired sessions so abandoned logins do not
// accumulate.
func (s *MemoryStore) sweepLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		s.mu.Lock()
		for token, sess := range s.sessions {
			if now.After(sess.ExpiresAt) {
				delete(s.sessions, token)
			}
		}
		s.mu.Unlock()
	}
}
