package handler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/keelhttp/keel/core/handler"
	"github.com/keelhttp/keel/core/httpx"
)

type countingHandler struct {
	calls int
}

func (h *countingHandler) Handle(req *httpx.Request, resp *httpx.Response) {
	h.calls++
	resp.Text("object")
}

func TestWrapperCallback(t *testing.T) {
	t.Parallel()

	invoked := false
	w := handler.Wrap(func(req *httpx.Request, resp *httpx.Response) {
		invoked = true
		resp.Text("callback")
	})

	assert.True(t, w.Valid())

	resp := httpx.NewResponse()
	w.Invoke(httpx.NewRequest(httpx.MethodGet, "/"), resp)

	assert.True(t, invoked)
	assert.Equal(t, "callback", string(resp.Body))
}

func TestWrapperObject(t *testing.T) {
	t.Parallel()

	h := &countingHandler{}
	w := handler.WrapHandler(h)

	assert.True(t, w.Valid())

	resp := httpx.NewResponse()
	w.Invoke(httpx.NewRequest(httpx.MethodGet, "/"), resp)

	assert.Equal(t, 1, h.calls)
	assert.Equal(t, "object", string(resp.Body))
}

func TestWrapperEmptyIsNoop(t *testing.T) {
	t.Parallel()

	var w handler.Wrapper

	assert.False(t, w.Valid())

	resp := httpx.NewResponse()
	assert.NotPanics(t, func() {
		w.Invoke(httpx.NewRequest(httpx.MethodGet, "/"), resp)
	})
	assert.Empty(t, resp.Body)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestMiddlewareFuncsDefaults(t *testing.T) {
	t.Parallel()

	req := httpx.NewRequest(httpx.MethodGet, "/")
	resp := httpx.NewResponse()

	t.Run("nil hooks", func(t *testing.T) {
		var m handler.MiddlewareFuncs
		assert.True(t, m.Before(req, resp))
		assert.NotPanics(t, func() { m.After(req, resp) })
	})

	t.Run("custom hooks", func(t *testing.T) {
		var afterRan bool
		m := handler.MiddlewareFuncs{
			BeforeFunc: func(req *httpx.Request, resp *httpx.Response) bool { return false },
			AfterFunc:  func(req *httpx.Request, resp *httpx.Response) { afterRan = true },
		}
		assert.False(t, m.Before(req, resp))
		m.After(req, resp)
		assert.True(t, afterRan)
	})
}
