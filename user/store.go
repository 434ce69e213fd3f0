// Package user keeps the accounts that may log in and own configurations.
package user

import (
	"sync"

	"github.com/xy-planning-network/hostcfg"
)

// A Store holds Users in memory, keyed by name.
//
// A Store is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	users map[string]hostcfg.User
}

// NewStore constructs an empty *Store.
func NewStore() *Store {
	return &Store{users: make(map[string]hostcfg.User)}
}

// Create adds u, returning it scrubbed of its password.
//
// If a User already goes by u.Name, ErrDuplicateUser returns.
func (s *Store) Create(u hostcfg.User) (hostcfg.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.Name]; ok {
		return hostcfg.User{}, hostcfg.Errorf(hostcfg.ErrDuplicateUser, "Username %s already exists", u.Name)
	}

	s.users[u.Name] = u
	return u.Scrub(), nil
}

// FindByName retrieves the User going by name, scrubbed of its password.
func (s *Store) FindByName(name string) (hostcfg.User, error) {
	s.mu.RLock()
	u, ok := s.users[name]
	s.mu.RUnlock()

	if !ok {
		return hostcfg.User{}, hostcfg.Errorf(hostcfg.ErrNotFound, "User %s not found.", name)
	}

	return u.Scrub(), nil
}

// ValidateCredentials confirms a User goes by name and has password,
// returning that User scrubbed of its password.
//
// Unknown names and wrong passwords both fail with ErrInvalidCredentials.
func (s *Store) ValidateCredentials(name, password string) (hostcfg.User, error) {
	s.mu.RLock()
	u, ok := s.users[name]
	s.mu.RUnlock()

	if !ok || u.Password != password {
		return hostcfg.User{}, hostcfg.Errorf(hostcfg.ErrInvalidCredentials, "Username/password combination not found.")
	}

	return u.Scrub(), nil
}
