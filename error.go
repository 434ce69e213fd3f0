package hostcfg

import (
	"errors"
	"fmt"
)

// Plumbing errors raised while wiring or decoding.
var (
	ErrBadConfig   = errors.New("bad config")
	ErrBadFormat   = errors.New("bad format")
	ErrNotValid    = errors.New("invalid")
	ErrUnexpected  = errors.New("unexpected")
	ErrMissingData = errors.New("missing data")
)

// The closed set of kinds a request can fail with.
// Check for them with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateName      = errors.New("duplicate name")
	ErrDuplicateUser      = errors.New("duplicate user")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidSort        = errors.New("invalid sort")
	ErrInvalidLimit       = errors.New("invalid limit")
	ErrForbidden          = errors.New("forbidden")
)

// An Error pairs one of the error kinds with the message shown to an API caller.
//
// Error prints only the message; the kind is reachable through errors.Is.
type Error struct {
	Kind error
	Msg  string
}

// Errorf constructs an *Error of the given kind, formatting the message like fmt.Sprintf.
func Errorf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }
