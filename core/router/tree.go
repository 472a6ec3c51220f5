package router

import (
	"sort"
	"strings"

	"github.com/keelhttp/keel/core/handler"
	"github.com/keelhttp/keel/core/httpx"
)

// nodeTyp orders trie children by match priority.
type nodeTyp uint8

const (
	ntStatic   nodeTyp = iota // /users
	ntParam                   // /:id
	ntCatchAll                // /*path
)

// node is one path segment in the trie. Children are kept sorted so
// static nodes precede the param node, which precedes the catch-all node;
// the match loop walks them in that order. A node owns at most one param
// child and at most one catch-all child.
type node struct {
	typ nodeTyp

	// segment text; the match key for static nodes,
	// the raw pattern segment otherwise
	path string

	// parameter name, meaningful for param and catch-all nodes only.
	// Empty for a bare '*' catch-all, which matches without binding.
	paramName string

	children []*node

	// per-method handlers on the leaf node
	endpoints endpoints

	// middlewares attached to this route entry
	middlewares []handler.Middleware
}

// tree is the dynamic-route tier: a segment-indexed radix trie.
type tree struct {
	root *node
}

func newTree() *tree {
	return &tree{root: &node{}}
}

// treeMatch is the result of a successful lookup.
type treeMatch struct {
	node   *node
	params map[string]string
}

// splitPath cuts a path into segments, discarding empties so leading,
// trailing and duplicate slashes collapse to nothing.
func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	segs := parts[:0]
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}

// parseSegment classifies one pattern segment and extracts its
// parameter name for dynamic segments.
func parseSegment(seg string) (nodeTyp, string) {
	switch {
	case strings.HasPrefix(seg, ":"):
		return ntParam, seg[1:]
	case strings.HasPrefix(seg, "*"):
		return ntCatchAll, seg[1:]
	default:
		return ntStatic, ""
	}
}

// hasDynamicSegment reports whether a pattern needs the trie tier.
func hasDynamicSegment(pattern string) bool {
	return strings.ContainsAny(pattern, ":*")
}

// insert registers a handler at the node addressed by pattern,
// creating intermediate nodes as needed.
func (t *tree) insert(method httpx.Method, pattern string, h handler.Wrapper) {
	n := t.nodeFor(pattern)
	if n.endpoints == nil {
		n.endpoints = make(endpoints)
	}
	n.endpoints.set(method, h, pattern)
}

// attachMiddleware appends middlewares to the route entry addressed by
// pattern, creating the node chain if the route is not yet registered.
func (t *tree) attachMiddleware(pattern string, mws ...handler.Middleware) {
	n := t.nodeFor(pattern)
	n.middlewares = append(n.middlewares, mws...)
}

// nodeFor descends segment by segment, finding or creating nodes.
// A node keeps a single param child and a single catch-all child:
// registering a second dynamic segment with a different name at the same
// position silently renames the recorded parameter, last name wins.
func (t *tree) nodeFor(pattern string) *node {
	n := t.root
	for _, seg := range splitPath(pattern) {
		typ, name := parseSegment(seg)

		var child *node
		switch typ {
		case ntStatic:
			child = n.staticChild(seg)
		case ntParam:
			child = n.paramChild()
		case ntCatchAll:
			child = n.catchAllChild()
		}

		if child == nil {
			child = &node{typ: typ, path: seg, paramName: name}
			n.addChild(child)
		} else if typ != ntStatic && child.paramName != name {
			child.paramName = name
			child.path = seg
		}

		n = child
	}
	return n
}

// addChild inserts keeping children sorted by type priority. The sort is
// stable, so static siblings stay in registration order.
func (n *node) addChild(child *node) {
	n.children = append(n.children, child)
	sort.SliceStable(n.children, func(i, j int) bool {
		return n.children[i].typ < n.children[j].typ
	})
}

func (n *node) staticChild(seg string) *node {
	for _, c := range n.children {
		if c.typ == ntStatic && c.path == seg {
			return c
		}
	}
	return nil
}

func (n *node) paramChild() *node {
	for _, c := range n.children {
		if c.typ == ntParam {
			return c
		}
	}
	return nil
}

func (n *node) catchAllChild() *node {
	for _, c := range n.children {
		if c.typ == ntCatchAll {
			return c
		}
	}
	return nil
}

// hasHandler reports whether the node carries a valid handler for method.
func (n *node) hasHandler(method httpx.Method) bool {
	if n.endpoints == nil {
		return false
	}
	_, ok := n.endpoints.value(method)
	return ok
}

// find runs a depth-first, priority-ordered search for path.
// It returns nil when no registered route with a handler for method
// covers the path.
func (t *tree) find(method httpx.Method, path string) *treeMatch {
	segs := splitPath(path)

	if len(segs) == 0 {
		if t.root.hasHandler(method) {
			return &treeMatch{node: t.root, params: map[string]string{}}
		}
		return nil
	}

	m := &treeMatch{params: make(map[string]string)}
	if t.root.match(method, segs, 0, m) {
		return m
	}
	return nil
}

// match tries the current segment against this node's children in
// priority order. The first subtree to fully match wins; param bindings
// are written on the success path as the recursion unwinds, and a failed
// subtree backtracks to the caller's next alternative.
func (n *node) match(method httpx.Method, segs []string, idx int, m *treeMatch) bool {
	if idx >= len(segs) {
		if n.hasHandler(method) {
			m.node = n
			return true
		}
		return false
	}

	seg := segs[idx]

	if sc := n.staticChild(seg); sc != nil {
		if sc.match(method, segs, idx+1, m) {
			return true
		}
	}

	if pc := n.paramChild(); pc != nil {
		if pc.match(method, segs, idx+1, m) {
			m.params[pc.paramName] = seg
			return true
		}
	}

	// Catch-all is terminal: it consumes every remaining segment and
	// never descends further.
	if cc := n.catchAllChild(); cc != nil && cc.hasHandler(method) {
		if cc.paramName != "" {
			m.params[cc.paramName] = strings.Join(segs[idx:], "/")
		}
		m.node = cc
		return true
	}

	return false
}

func (t *tree) appendRoutes(rts []Route) []Route {
	return t.root.appendRoutes(rts)
}

func (n *node) appendRoutes(rts []Route) []Route {
	for m, ep := range n.endpoints {
		if !ep.handler.Valid() {
			continue
		}
		rts = append(rts, Route{Method: m.String(), Pattern: ep.pattern})
	}
	for _, c := range n.children {
		rts = c.appendRoutes(rts)
	}
	return rts
}
