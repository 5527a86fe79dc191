// Package adminauth guards the admin console with a single shared password.
// Sessions are random bearer tokens held in memory; restarting the process
// logs every admin out. There are no user accounts.
package adminauth

import (
	"errors"
	"time"
)

var ErrBadPassword = errors.New("invalid password")

type Service struct {
	password string
	tokens   *tokenManager
	ttl      time.Duration
}

func New(password string) *Service {
	return &Service{
		password: password,
		tokens:   newTokenManager(),
		ttl:      8 * time.Hour,
	}
}

// Login exchanges the admin password for a session token.
func (s *Service) Login(password string) (string, error) {
	if password != s.password {
		return "", ErrBadPassword
	}
	return s.tokens.Issue(s.ttl)
}

// Valid reports whether token identifies a live admin session.
func (s *Service) Valid(token string) bool {
	return s.tokens.Validate(token)
}

// Logout revokes the token. Revoking an unknown token is a no-op.
func (s *Service) Logout(token string) {
	s.tokens.Revoke(token)
}

// TTLSeconds is the session lifetime advertised to the client.
func (s *Service) TTLSeconds() int {
	return int(s.ttl.Seconds())
}
