// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid session token")
	ErrExpired         = errors.New("session expired")
)

// DefaultTTL is how long a session stays valid after login.
const DefaultTTL = 24 * time.Hour

// CookieName is the session cookie set on successful login.
const CookieName = "quizcast_session"

// Manager issues and validates admin sessions. Tokens are a random
// UUID signed with HMAC-SHA256 so a forged cookie fails before the
// session table is consulted. Sessions live in memory only; a restart
// logs everyone out.
type Manager struct {
	password string
	secret   []byte
	ttl      time.Duration

	mu       sync.Mutex
	sessions map[string]time.Time // session ID -> expiry
}

func NewManager(password, secret string) *Manager {
	return &Manager{
		password: password,
		secret:   []byte(secret),
		ttl:      DefaultTTL,
		sessions: make(map[string]time.Time),
	}
}

// Login checks the admin password and, on success, returns a signed
// session token for the cookie.
func (m *Manager) Login(password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(m.password)) != 1 {
		return "", ErrInvalidPassword
	}

	id := uuid.NewString()
	m.mu.Lock()
	m.sessions[id] = time.Now().Add(m.ttl)
	m.mu.Unlock()

	return id + "." + m.sign(id), nil
}

// Validate checks a token's signature and session expiry.
func (m *Manager) Validate(token string) error {
	id, sig, ok := strings.Cut(token, ".")
	if !ok {
		return ErrInvalidToken
	}
	if !hmac.Equal([]byte(sig), []byte(m.sign(id))) {
		return ErrInvalidToken
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	expiry, found := m.sessions[id]
	if !found {
		return ErrInvalidToken
	}
	if time.Now().After(expiry) {
		delete(m.sessions, id)
		return ErrExpired
	}
	return nil
}

// Logout invalidates the session behind a token. Unknown or malformed
// tokens are a no-op.
func (m *Manager) Logout(token string) {
	id, _, ok := strings.Cut(token, ".")
	if !ok {
		return
	}
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Active reports the number of live sessions, pruning expired ones.
func (m *Manager) Active() int {
	now := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, expiry := range m.sessions {
		if now.After(expiry) {
			delete(m.sessions, id)
		}
	}
	return len(m.sessions)
}

func (m *Manager) sign(id string) string {
	h := hmac.New(sha256.New, m.secret)
	h.Write([]byte(id))
	return strings.TrimRight(base64.URLEncoding.EncodeToString(h.Sum(nil)), "=")
}
