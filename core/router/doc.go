// Package router implements the request-routing and dispatch core: given a
// parsed request it finds the matching handler, extracts path parameters,
// and runs a deterministic middleware pipeline around the invocation.
//
// # Lookup tiers
//
// Three matching strategies sit behind one contract, consulted in order:
//
//  1. Static index — O(1) exact-path lookup for routes without dynamic
//     segments.
//  2. Radix trie — segment-indexed tree for :param and *catchAll routes,
//     matched depth-first with priority static > param > catch-all.
//  3. Regex table — ordered full-path patterns with positional parameter
//     names, consulted only when the first two tiers miss.
//
// Each tier is method-aware: a path match without a handler for the
// request's method counts as a miss and the next tier is consulted.
//
// # Basic usage
//
//	r := router.New()
//
//	r.Get("/api/users/list", listUsers)
//	r.Get("/api/users/:id", func(req *httpx.Request, resp *httpx.Response) {
//		resp.Text("user " + req.Param("id"))
//	})
//	r.Get("/static/*path", serveFile)
//
//	found := r.Route(req, resp)
//
// # Pattern syntax
//
// A path segment starting with ':' binds that segment to the named
// parameter. A segment starting with '*' consumes all remaining segments
// as one value; a bare '*' matches without binding. Leading, trailing and
// duplicate slashes in dynamic patterns are collapsed, so "/a//b/" and
// "/a/b" register identically.
//
// # Middleware
//
// Middlewares carry a Before/After hook pair. Per request the chain is
// built from the global list, then middlewares scoped to the literal
// request path, then middlewares attached to the matched route entry.
// Before hooks run in order and may veto the handler; After hooks always
// run, in reverse order, even after a veto or a routing miss.
//
// # Concurrency
//
// Registration is not synchronized against lookups. Complete all
// registrations before serving begins; afterwards the routing tables are
// read-only and safe for concurrent lookups without locking.
package router
