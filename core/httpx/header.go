package httpx

import "net/textproto"

// Header is a case-insensitive header mapping. Keys are stored in
// canonical MIME form, so Get("content-type") and Get("Content-Type")
// address the same entry.
type Header map[string]string

// NewHeader returns an empty header mapping.
func NewHeader() Header {
	return make(Header)
}

// Set stores the value under the canonical form of key,
// replacing any existing value.
func (h Header) Set(key, value string) {
	h[textproto.CanonicalMIMEHeaderKey(key)] = value
}

// Get returns the value stored under the canonical form of key,
// or an empty string if the key is absent.
func (h Header) Get(key string) string {
	return h[textproto.CanonicalMIMEHeaderKey(key)]
}

// Has reports whether the key is present.
func (h Header) Has(key string) bool {
	_, ok := h[textproto.CanonicalMIMEHeaderKey(key)]
	return ok
}

// Del removes the value stored under the canonical form of key.
func (h Header) Del(key string) {
	delete(h, textproto.CanonicalMIMEHeaderKey(key))
}
