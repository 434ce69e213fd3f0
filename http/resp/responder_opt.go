package resp

import (
	"github.com/xy-planning-network/hostcfg/logger"
)

// A ResponderOptFn mutates the provided *Responder in some way.
// A ResponderOptFn is used when constructing a new Responder.
type ResponderOptFn func(*Responder)

// WithLogger sets the provided implementation of Logger in order to log all statements through it.
//
// If no Logger is provided through this option, a default logger is configured.
func WithLogger(log logger.Logger) func(*Responder) {
	return func(d *Responder) {
		d.logger = log
	}
}

// WithIndent sets the indentation used when writing JSON.
// By default, two spaces.
func WithIndent(indent string) func(*Responder) {
	return func(d *Responder) {
		d.indent = indent
	}
}
