// Package session binds opaque auth tokens to the Users that logged in with them.
package session

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/xy-planning-network/hostcfg"
)

// A CredentialsValidator confirms a name and password belong to a User.
type CredentialsValidator interface {
	ValidateCredentials(name, password string) (hostcfg.User, error)
}

// A Service logs Users in and out, and resolves auth tokens back to Users.
//
// A Service is safe for concurrent use.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]hostcfg.User
	users    CredentialsValidator
	newToken func() string
}

// A ServiceOptFn configures a *Service.
type ServiceOptFn func(*Service)

// WithTokenFunc sets the source of new auth tokens.
//
// By default, tokens are random UUIDs without dashes.
func WithTokenFunc(fn func() string) ServiceOptFn {
	return func(s *Service) {
		if fn != nil {
			s.newToken = fn
		}
	}
}

// NewService constructs a *Service checking credentials against users.
func NewService(users CredentialsValidator, opts ...ServiceOptFn) *Service {
	s := &Service{
		sessions: make(map[string]hostcfg.User),
		users:    users,
		newToken: newToken,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Login mints an auth token for the User with name and password.
//
// If the credentials do not match a User, ErrInvalidCredentials returns.
func (s *Service) Login(name, password string) (string, error) {
	u, err := s.users.ValidateCredentials(name, password)
	if err != nil {
		return "", err
	}

	token := s.newToken()

	s.mu.Lock()
	s.sessions[token] = u.Scrub()
	s.mu.Unlock()

	return token, nil
}

// Logout forgets token, whether or not it was ever issued.
func (s *Service) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Validate retrieves the User token was issued to.
//
// If token is not bound to a User, ErrInvalidToken returns.
func (s *Service) Validate(token string) (hostcfg.User, error) {
	s.mu.RLock()
	u, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return hostcfg.User{}, hostcfg.Errorf(hostcfg.ErrInvalidToken, "Invalid auth token.")
	}

	return u, nil
}

func newToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
