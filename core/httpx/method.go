package httpx

import "net/http"

// Method identifies an HTTP verb. Methods are bit flags so a single
// registration can target several verbs at once via MethodAll.
type Method uint

const (
	MethodConnect Method = 1 << iota
	MethodDelete
	MethodGet
	MethodHead
	MethodOptions
	MethodPatch
	MethodPost
	MethodPut
	MethodTrace
)

// MethodAll matches every supported HTTP verb.
const MethodAll = MethodConnect | MethodDelete | MethodGet | MethodHead |
	MethodOptions | MethodPatch | MethodPost | MethodPut | MethodTrace

var methodMap = map[string]Method{
	http.MethodConnect: MethodConnect,
	http.MethodDelete:  MethodDelete,
	http.MethodGet:     MethodGet,
	http.MethodHead:    MethodHead,
	http.MethodOptions: MethodOptions,
	http.MethodPatch:   MethodPatch,
	http.MethodPost:    MethodPost,
	http.MethodPut:     MethodPut,
	http.MethodTrace:   MethodTrace,
}

var reverseMethodMap = map[Method]string{
	MethodConnect: http.MethodConnect,
	MethodDelete:  http.MethodDelete,
	MethodGet:     http.MethodGet,
	MethodHead:    http.MethodHead,
	MethodOptions: http.MethodOptions,
	MethodPatch:   http.MethodPatch,
	MethodPost:    http.MethodPost,
	MethodPut:     http.MethodPut,
	MethodTrace:   http.MethodTrace,
}

// methods lists every single-verb flag in a stable order.
var methods = []Method{
	MethodConnect,
	MethodDelete,
	MethodGet,
	MethodHead,
	MethodOptions,
	MethodPatch,
	MethodPost,
	MethodPut,
	MethodTrace,
}

// ParseMethod maps an HTTP verb string to its Method flag.
// The second return value reports whether the verb is supported.
func ParseMethod(s string) (Method, bool) {
	m, ok := methodMap[s]
	return m, ok
}

// Methods returns every single-verb flag in a stable order.
func Methods() []Method {
	out := make([]Method, len(methods))
	copy(out, methods)
	return out
}

// String returns the verb string for a single-method flag,
// or an empty string for combined flags.
func (m Method) String() string {
	return reverseMethodMap[m]
}
