package handler

import "github.com/keelhttp/keel/core/httpx"

// Func handles a request by mutating the response in place.
type Func func(req *httpx.Request, resp *httpx.Response)

// Handler is implemented by objects that serve requests. Prefer Func for
// stateless handlers; Handler suits handlers carrying dependencies.
type Handler interface {
	Handle(req *httpx.Request, resp *httpx.Response)
}

// Wrapper is a tagged choice between a callback and a Handler object.
// At most one variant is set. The zero Wrapper is empty: Invoke on it is
// a no-op, and dispatch code must check Valid before invoking.
type Wrapper struct {
	fn  Func
	obj Handler
}

// Wrap binds a callback.
func Wrap(fn Func) Wrapper {
	return Wrapper{fn: fn}
}

// WrapHandler binds a handler object.
func WrapHandler(h Handler) Wrapper {
	return Wrapper{obj: h}
}

// Valid reports whether a variant is set.
func (w Wrapper) Valid() bool {
	return w.fn != nil || w.obj != nil
}

// Invoke dispatches to whichever variant is set.
// Invoking an empty wrapper does nothing.
func (w Wrapper) Invoke(req *httpx.Request, resp *httpx.Response) {
	switch {
	case w.fn != nil:
		w.fn(req, resp)
	case w.obj != nil:
		w.obj.Handle(req, resp)
	}
}
