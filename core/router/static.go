package router

import (
	"github.com/keelhttp/keel/core/handler"
	"github.com/keelhttp/keel/core/httpx"
)

// staticIndex is the exact-match tier: a map from full path to the
// per-method handlers registered under it. Only routes without dynamic
// segments live here. The index carries no per-route middleware list;
// path-scoped middlewares cover static routes.
type staticIndex struct {
	routes map[string]endpoints
}

func newStaticIndex() *staticIndex {
	return &staticIndex{routes: make(map[string]endpoints)}
}

func (s *staticIndex) insert(method httpx.Method, path string, h handler.Wrapper) {
	eps, ok := s.routes[path]
	if !ok {
		eps = make(endpoints)
		s.routes[path] = eps
	}
	eps.set(method, h, path)
}

// lookup returns the handler for (method, path), or ok=false when the path
// was never registered or carries no handler for the method.
func (s *staticIndex) lookup(method httpx.Method, path string) (handler.Wrapper, bool) {
	eps, ok := s.routes[path]
	if !ok {
		return handler.Wrapper{}, false
	}
	return eps.value(method)
}

func (s *staticIndex) appendRoutes(rts []Route) []Route {
	for path, eps := range s.routes {
		for m, ep := range eps {
			if !ep.handler.Valid() {
				continue
			}
			rts = append(rts, Route{Method: m.String(), Pattern: path})
		}
	}
	return rts
}
