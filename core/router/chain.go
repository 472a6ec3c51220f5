package router

import (
	"github.com/keelhttp/keel/core/handler"
	"github.com/keelhttp/keel/core/httpx"
)

// chain is the middleware sequence assembled for a single request:
// global middlewares first, then path-scoped, then the matched route's own.
type chain struct {
	middlewares []handler.Middleware
}

// executeBefore runs each Before hook in order. The first false return
// stops the chain; no further Before hooks run and the handler is skipped.
func (c *chain) executeBefore(req *httpx.Request, resp *httpx.Response) bool {
	for _, mw := range c.middlewares {
		if !mw.Before(req, resp) {
			return false
		}
	}
	return true
}

// executeAfter runs every After hook in reverse registration order,
// unconditionally. Hooks whose Before never ran still get their After.
func (c *chain) executeAfter(req *httpx.Request, resp *httpx.Response) {
	for i := len(c.middlewares) - 1; i >= 0; i-- {
		c.middlewares[i].After(req, resp)
	}
}
