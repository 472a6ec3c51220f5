package router

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/keelhttp/keel/core/handler"
	"github.com/keelhttp/keel/core/httpx"
)

// regexEntry is one compiled full-path pattern with its positional
// parameter names: capture group i binds to paramNames[i-1].
type regexEntry struct {
	pattern     string
	rex         *regexp.Regexp
	paramNames  []string
	endpoints   endpoints
	middlewares []handler.Middleware
}

// regexTable is the fallback tier: an ordered list of entries consulted
// in registration order after the static index and the trie both miss.
type regexTable struct {
	entries []*regexEntry
}

// anchorPattern pins the pattern to the full path.
func anchorPattern(pattern string) string {
	if !strings.HasPrefix(pattern, "^") {
		pattern = "^" + pattern
	}
	if !strings.HasSuffix(pattern, "$") {
		pattern += "$"
	}
	return pattern
}

// insert compiles and appends a new entry, or merges into the existing
// entry when the identical pattern string was registered before.
// Compilation failures surface immediately as registration errors.
func (t *regexTable) insert(method httpx.Method, pattern string, paramNames []string, h handler.Wrapper) error {
	for _, e := range t.entries {
		if e.pattern == pattern {
			e.endpoints.set(method, h, pattern)
			return nil
		}
	}

	rex, err := regexp.Compile(anchorPattern(pattern))
	if err != nil {
		return fmt.Errorf("%w: '%s': %v", ErrInvalidRegexp, pattern, err)
	}

	e := &regexEntry{
		pattern:    pattern,
		rex:        rex,
		paramNames: append([]string(nil), paramNames...),
		endpoints:  make(endpoints),
	}
	e.endpoints.set(method, h, pattern)
	t.entries = append(t.entries, e)
	return nil
}

// find returns the entry for pattern, or nil.
func (t *regexTable) find(pattern string) *regexEntry {
	for _, e := range t.entries {
		if e.pattern == pattern {
			return e
		}
	}
	return nil
}

// lookup scans entries in registration order. The first entry whose
// pattern matches the full path and that carries a handler for method
// wins; non-matching entries are skipped, not retried.
func (t *regexTable) lookup(method httpx.Method, path string) (*regexEntry, map[string]string) {
	for _, e := range t.entries {
		groups := e.rex.FindStringSubmatch(path)
		if groups == nil {
			continue
		}
		if _, ok := e.endpoints.value(method); !ok {
			continue
		}

		params := make(map[string]string, len(e.paramNames))
		for i := 0; i < len(e.paramNames) && i+1 < len(groups); i++ {
			params[e.paramNames[i]] = groups[i+1]
		}
		return e, params
	}
	return nil, nil
}

func (t *regexTable) appendRoutes(rts []Route) []Route {
	for _, e := range t.entries {
		for m, ep := range e.endpoints {
			if !ep.handler.Valid() {
				continue
			}
			rts = append(rts, Route{Method: m.String(), Pattern: e.pattern})
		}
	}
	return rts
}
