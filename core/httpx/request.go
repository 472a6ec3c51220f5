package httpx

// Request is an already-parsed HTTP request. The wire parser collaborator
// builds it; the router fills in path parameters during matching. A Request
// is owned by a single request-handling context for the duration of
// dispatch and must not be shared across requests.
type Request struct {
	Method Method
	Path   string
	Header Header
	Body   []byte

	params map[string]string
}

// NewRequest creates a request with an empty header mapping.
func NewRequest(method Method, path string) *Request {
	return &Request{
		Method: method,
		Path:   path,
		Header: NewHeader(),
	}
}

// Param returns the path parameter bound under name,
// or an empty string if no such parameter was extracted.
func (r *Request) Param(name string) string {
	return r.params[name]
}

// SetParam binds a path parameter. The router calls this for every
// parameter extracted from the matched route.
func (r *Request) SetParam(name, value string) {
	if r.params == nil {
		r.params = make(map[string]string)
	}
	r.params[name] = value
}

// Params returns the full path-parameter mapping. The returned map is the
// request's own; callers must not retain it past the request lifetime.
func (r *Request) Params() map[string]string {
	return r.params
}
