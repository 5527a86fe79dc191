package adminauth

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"
)

type tokenManager struct {
	mu     sync.RWMutex
	tokens map[string]time.Time // token -> expiry
}

func newTokenManager() *tokenManager {
	return &tokenManager{tokens: make(map[string]time.Time)}
}

func (m *tokenManager) Issue(ttl time.Duration) (string, error) {
	token, err := randomToken()
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	m.tokens[token] = time.Now().Add(ttl)
	m.mu.Unlock()
	return token, nil
}

func (m *tokenManager) Validate(token string) bool {
	m.mu.RLock()
	expiry, ok := m.tokens[token]
	m.mu.RUnlock()
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		m.Revoke(token)
		return false
	}
	return true
}

func (m *tokenManager) Revoke(token string) {
	m.mu.Lock()
	delete(m.tokens, token)
	m.mu.Unlock()
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
