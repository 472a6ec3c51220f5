package router

import (
	"github.com/keelhttp/keel/core/handler"
	"github.com/keelhttp/keel/core/httpx"
)

// endpoint holds the handler registered for one method at a route location.
type endpoint struct {
	handler handler.Wrapper
	pattern string
}

// endpoints maps single-method flags to their registered endpoint.
type endpoints map[httpx.Method]*endpoint

// set registers the handler for every single-method flag contained in
// method. Re-registering a method overwrites the previous handler;
// last write wins.
func (eps endpoints) set(method httpx.Method, h handler.Wrapper, pattern string) {
	for _, m := range httpx.Methods() {
		if method&m == 0 {
			continue
		}
		eps[m] = &endpoint{handler: h, pattern: pattern}
	}
}

// value returns the handler registered for the request method.
// The boolean reports whether a valid handler exists.
func (eps endpoints) value(method httpx.Method) (handler.Wrapper, bool) {
	ep, ok := eps[method]
	if !ok || !ep.handler.Valid() {
		return handler.Wrapper{}, false
	}
	return ep.handler, true
}

// Route describes a registered route for introspection.
type Route struct {
	Method  string
	Pattern string
}
