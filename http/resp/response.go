package resp

import (
	"net/http"
)

// A Fn is a functional option that mutates the state of the Response.
type Fn func(Responder, *Response) error

// A Response is the internal object a Responder response method builds while applying all
// functional options.
type Response struct {
	w         http.ResponseWriter
	r         *http.Request
	closeBody bool
	code      int
	data      any
	err       error
}

// Code sets the response status code.
func Code(c int) Fn {
	return func(_ Responder, r *Response) error {
		r.code = c
		return nil
	}
}

// Data stores the provided value for writing to the client as is.
func Data(d any) Fn {
	return func(_ Responder, r *Response) error {
		r.data = d
		return nil
	}
}

// Err logs the error and, unless a code is already set,
// sets the status code http.StatusInternalServerError.
//
// Failures a caller provoked log at WARN; anything else at ERROR.
func Err(e error) Fn {
	return func(d Responder, r *Response) error {
		r.err = e
		if e != nil {
			lc := newLogContext(r.r, e, r.data)
			if isBusiness(e) {
				d.logger.Warn(e.Error(), lc)
			} else {
				d.logger.Error(e.Error(), lc)
			}
		}

		if r.code == 0 {
			return Code(http.StatusInternalServerError)(d, r)
		}

		return nil
	}
}

// Message stores msg as the body {"message": msg}.
func Message(msg string) Fn {
	return Data(map[string]string{"message": msg})
}
