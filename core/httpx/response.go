package httpx

import (
	"encoding/json"
	"net/http"
)

// Content types used by the convenience setters.
const (
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypeJSON = "application/json; charset=utf-8"
)

// Response is the mutable response value handlers and middlewares write to.
// It is mutated in place and never replaced wholesale; the transport
// collaborator serializes it to the wire after dispatch completes.
type Response struct {
	StatusCode int
	Header     Header
	Body       []byte
}

// NewResponse creates a 200 OK response with an empty header mapping.
func NewResponse() *Response {
	return &Response{
		StatusCode: http.StatusOK,
		Header:     NewHeader(),
	}
}

// Status sets the response status code.
func (r *Response) Status(code int) *Response {
	r.StatusCode = code
	return r
}

// SetHeader sets a response header.
func (r *Response) SetHeader(key, value string) *Response {
	r.Header.Set(key, value)
	return r
}

// ContentType sets the Content-Type header.
func (r *Response) ContentType(ct string) *Response {
	r.Header.Set("Content-Type", ct)
	return r
}

// Text sets a plain-text body.
func (r *Response) Text(body string) *Response {
	r.Body = []byte(body)
	return r.ContentType(ContentTypeText)
}

// HTML sets an HTML body.
func (r *Response) HTML(body string) *Response {
	r.Body = []byte(body)
	return r.ContentType(ContentTypeHTML)
}

// JSON marshals v into the body and sets the JSON content type.
// The response is left untouched if marshaling fails.
func (r *Response) JSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	r.Body = b
	r.ContentType(ContentTypeJSON)
	return nil
}

// Bytes sets a raw body with the given content type.
// An empty contentType leaves the header untouched.
func (r *Response) Bytes(body []byte, contentType string) *Response {
	r.Body = body
	if contentType != "" {
		r.ContentType(contentType)
	}
	return r
}
