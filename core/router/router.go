package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/keelhttp/keel/core/handler"
	"github.com/keelhttp/keel/core/httpx"
)

// Router is the dispatch core. It orchestrates the three lookup tiers,
// assembles the per-request middleware chain, and invokes the matched
// handler or the not-found handler.
//
// Registration must complete before concurrent serving begins; Route may
// then be called from many goroutines without locking.
type Router struct {
	static  *staticIndex
	tree    *tree
	regexes *regexTable

	middlewares     []handler.Middleware
	pathMiddlewares map[string][]handler.Middleware

	notFound handler.Wrapper
	logger   *slog.Logger
}

// defaultNotFound renders the stock 404 page.
var defaultNotFound = handler.Wrap(func(req *httpx.Request, resp *httpx.Response) {
	resp.Status(http.StatusNotFound).
		HTML("<html><body><h1>404 Not Found</h1></body></html>")
})

// New creates a router with the given options.
func New(opts ...Option) *Router {
	r := &Router{
		static:          newStaticIndex(),
		tree:            newTree(),
		regexes:         &regexTable{},
		pathMiddlewares: make(map[string][]handler.Middleware),
		notFound:        defaultNotFound,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Handle registers a handler for (method, pattern). Patterns without
// dynamic segments go to the static index; patterns containing ':' or '*'
// segments go to the trie. Re-registering the same (method, pattern)
// silently overwrites the previous handler.
func (r *Router) Handle(method httpx.Method, pattern string, h handler.Wrapper) {
	if len(pattern) == 0 || pattern[0] != '/' {
		panic(fmt.Errorf("%w: '%s'", ErrInvalidPattern, pattern))
	}
	if method&httpx.MethodAll == 0 {
		panic(fmt.Errorf("%w: %d", ErrInvalidMethod, method))
	}
	if !h.Valid() {
		panic(fmt.Errorf("%w: '%s'", ErrNilHandler, pattern))
	}

	if hasDynamicSegment(pattern) {
		r.tree.insert(method, pattern, h)
		r.logger.Debug("route registered", "tier", "trie", "pattern", pattern)
		return
	}

	r.static.insert(method, pattern, h)
	r.logger.Debug("route registered", "tier", "static", "pattern", pattern)
}

// HandleRegex registers a handler under a full-path regex pattern.
// The pattern is anchored at both ends; capture group i binds to
// paramNames[i-1]. Registering the identical pattern string again merges
// into the existing entry. A malformed pattern is reported immediately.
func (r *Router) HandleRegex(method httpx.Method, pattern string, paramNames []string, h handler.Wrapper) error {
	if method&httpx.MethodAll == 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMethod, method)
	}
	if !h.Valid() {
		return fmt.Errorf("%w: '%s'", ErrNilHandler, pattern)
	}

	if err := r.regexes.insert(method, pattern, paramNames, h); err != nil {
		return err
	}
	r.logger.Debug("route registered", "tier", "regex", "pattern", pattern)
	return nil
}

// Get registers a callback for GET requests.
func (r *Router) Get(pattern string, fn handler.Func) {
	r.Handle(httpx.MethodGet, pattern, handler.Wrap(fn))
}

// Post registers a callback for POST requests.
func (r *Router) Post(pattern string, fn handler.Func) {
	r.Handle(httpx.MethodPost, pattern, handler.Wrap(fn))
}

// Put registers a callback for PUT requests.
func (r *Router) Put(pattern string, fn handler.Func) {
	r.Handle(httpx.MethodPut, pattern, handler.Wrap(fn))
}

// Delete registers a callback for DELETE requests.
func (r *Router) Delete(pattern string, fn handler.Func) {
	r.Handle(httpx.MethodDelete, pattern, handler.Wrap(fn))
}

// Patch registers a callback for PATCH requests.
func (r *Router) Patch(pattern string, fn handler.Func) {
	r.Handle(httpx.MethodPatch, pattern, handler.Wrap(fn))
}

// Head registers a callback for HEAD requests.
func (r *Router) Head(pattern string, fn handler.Func) {
	r.Handle(httpx.MethodHead, pattern, handler.Wrap(fn))
}

// Options registers a callback for OPTIONS requests.
func (r *Router) Options(pattern string, fn handler.Func) {
	r.Handle(httpx.MethodOptions, pattern, handler.Wrap(fn))
}

// Use appends global middleware, run for every request in registration
// order ahead of path-scoped and route middlewares.
func (r *Router) Use(mws ...handler.Middleware) {
	r.middlewares = append(r.middlewares, mws...)
}

// UseOn attaches middleware to a path or pattern. Dynamic patterns attach
// to the trie route entry and regex pattern strings to their table entry,
// running only when that entry matches. A literal path is scoped to the
// exact request path instead; static index entries carry no middleware
// list of their own.
func (r *Router) UseOn(pattern string, mws ...handler.Middleware) {
	if len(mws) == 0 {
		return
	}

	if hasDynamicSegment(pattern) {
		r.tree.attachMiddleware(pattern, mws...)
		return
	}
	if e := r.regexes.find(pattern); e != nil {
		e.middlewares = append(e.middlewares, mws...)
		return
	}
	r.pathMiddlewares[pattern] = append(r.pathMiddlewares[pattern], mws...)
}

// SetNotFound replaces the not-found handler. An empty wrapper is ignored
// and the current handler kept.
func (r *Router) SetNotFound(h handler.Wrapper) {
	if h.Valid() {
		r.notFound = h
	}
}

// Route dispatches a request: it resolves the handler through the three
// lookup tiers, binds extracted path parameters onto the request, and runs
// the middleware chain around the handler (or the not-found handler).
//
// The return value reports whether a route was found, independent of
// whether the handler actually ran; a middleware veto does not change it.
func (r *Router) Route(req *httpx.Request, resp *httpx.Response) bool {
	var (
		h        handler.Wrapper
		found    bool
		routeMWs []handler.Middleware
		params   map[string]string
	)

	if hh, ok := r.static.lookup(req.Method, req.Path); ok {
		h = hh
		found = true
	}

	if !found {
		if m := r.tree.find(req.Method, req.Path); m != nil {
			h, _ = m.node.endpoints.value(req.Method)
			found = true
			routeMWs = m.node.middlewares
			params = m.params
		}
	}

	if !found {
		if e, p := r.regexes.lookup(req.Method, req.Path); e != nil {
			h, _ = e.endpoints.value(req.Method)
			found = true
			routeMWs = e.middlewares
			params = p
		}
	}

	for k, v := range params {
		req.SetParam(k, v)
	}

	scoped := r.pathMiddlewares[req.Path]
	mws := make([]handler.Middleware, 0, len(r.middlewares)+len(scoped)+len(routeMWs))
	mws = append(mws, r.middlewares...)
	mws = append(mws, scoped...)
	mws = append(mws, routeMWs...)
	c := &chain{middlewares: mws}

	if c.executeBefore(req, resp) {
		if found {
			if h.Valid() {
				h.Invoke(req, resp)
			}
		} else {
			r.notFound.Invoke(req, resp)
		}
	}

	c.executeAfter(req, resp)

	return found
}

// Routes returns all registered routes across the three tiers.
func (r *Router) Routes() []Route {
	rts := []Route{}
	rts = r.static.appendRoutes(rts)
	rts = r.tree.appendRoutes(rts)
	rts = r.regexes.appendRoutes(rts)
	return rts
}
