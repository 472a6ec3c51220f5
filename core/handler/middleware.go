package handler

import "github.com/keelhttp/keel/core/httpx"

// Middleware wraps handler invocation with a before/after hook pair.
// Before runs ahead of the handler and may veto it by returning false.
// After runs once dispatch unwinds, regardless of veto or match outcome.
//
// The same Middleware value may be referenced from the global list, a
// path-scoped list, and a route's own list simultaneously.
type Middleware interface {
	Before(req *httpx.Request, resp *httpx.Response) bool
	After(req *httpx.Request, resp *httpx.Response)
}

// MiddlewareFuncs adapts plain functions to the Middleware interface.
// A nil BeforeFunc allows continuation; a nil AfterFunc does nothing.
type MiddlewareFuncs struct {
	BeforeFunc func(req *httpx.Request, resp *httpx.Response) bool
	AfterFunc  func(req *httpx.Request, resp *httpx.Response)
}

// Before implements Middleware.
func (m MiddlewareFuncs) Before(req *httpx.Request, resp *httpx.Response) bool {
	if m.BeforeFunc == nil {
		return true
	}
	return m.BeforeFunc(req, resp)
}

// After implements Middleware.
func (m MiddlewareFuncs) After(req *httpx.Request, resp *httpx.Response) {
	if m.AfterFunc != nil {
		m.AfterFunc(req, resp)
	}
}
