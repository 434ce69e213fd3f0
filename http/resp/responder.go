package resp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/xy-planning-network/hostcfg/logger"
)

const responderFrames = 2

// Responder maintains reusable pieces for responding to HTTP requests.
// It exposes methods for writing JSON as an HTTP response:
//
//	Err
//	Json
//	NoContent
//
// Setting up a single instance of a Responder suffices for an application.
//
// When handling a specific HTTP request, calling code supplies additional data, status codes,
// and so forth through Fn functions.
type Responder struct {
	logger logger.Logger

	// Indentation for JSON bodies
	indent string

	// Pool of *bytes.Buffer to prerender responses into
	pool *sync.Pool
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
func NewResponder(opts ...ResponderOptFn) *Responder {
	d := &Responder{
		indent: "  ",
		pool:   &sync.Pool{New: func() any { return new(bytes.Buffer) }},
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New(slog.Default())
	}

	if l, ok := d.logger.(logger.SkipLogger); ok {
		d.logger = l.AddSkip(responderFrames)
	}

	return d
}

// Err responds with the message of err as {"message": "..."},
// logging the error causing the failure state.
//
// Without a Code, the status is http.StatusInternalServerError.
func (doer *Responder) Err(w http.ResponseWriter, r *http.Request, err error, opts ...Fn) {
	rr, nested := doer.do(w, r, append(opts, Err(err))...)
	if nested != nil {
		doer.logger.Error(nested.Error(), newLogContext(r, nested, nil))
		return
	}

	if rr.closeBody {
		defer r.Body.Close()
	}

	var msg string
	if err != nil {
		msg = err.Error()
	}

	_ = doer.write(w, rr.code, map[string]string{"message": msg})
}

// Json responds with data in JSON format, setting appropriate headers.
//
// Without a Code, the status is http.StatusOK.
func (doer *Responder) Json(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(w, r, opts...)
	if err != nil {
		return err
	}

	if rr.closeBody {
		defer r.Body.Close()
	}

	if rr.code == 0 {
		rr.code = http.StatusOK
	}

	return doer.write(w, rr.code, rr.data)
}

// NoContent responds with http.StatusNoContent and no body.
func (doer *Responder) NoContent(w http.ResponseWriter, r *http.Request) {
	if r.Body != nil {
		defer r.Body.Close()
	}

	w.WriteHeader(http.StatusNoContent)
}

func (doer *Responder) do(w http.ResponseWriter, r *http.Request, opts ...Fn) (*Response, error) {
	resp := &Response{
		closeBody: r.Body != nil,
		w:         w,
		r:         r,
	}

	for _, opt := range opts {
		select {
		case <-r.Context().Done():
			return nil, fmt.Errorf("%w", ErrDone)
		default:
			if err := opt(*doer, resp); err != nil {
				return resp, err
			}
		}
	}

	return resp, nil
}

func (doer *Responder) write(w http.ResponseWriter, code int, data any) error {
	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	enc := json.NewEncoder(b)
	enc.SetIndent("", doer.indent)
	if err := enc.Encode(data); err != nil {
		doer.logger.Error(err.Error(), &logger.LogContext{Error: err})
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(code)
	if _, err := b.WriteTo(w); err != nil {
		return err
	}

	return nil
}
