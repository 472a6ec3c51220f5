package router_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keelhttp/keel/core/handler"
	"github.com/keelhttp/keel/core/httpx"
	"github.com/keelhttp/keel/core/router"
)

func TestRouterStaticRoutes(t *testing.T) {
	t.Parallel()

	r := router.New()

	routes := []string{
		"/",
		"/users",
		"/users/profile",
		"/admin",
		"/admin/users",
		"/api/v1/posts",
		"/api/v2/posts",
	}

	for _, route := range routes {
		r.Get(route, echo(route))
	}

	for _, route := range routes {
		t.Run("route_"+route, func(t *testing.T) {
			_, resp, found := dispatch(r, httpx.MethodGet, route)

			assert.True(t, found)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, route, string(resp.Body))
		})
	}
}

func TestRouterRegisterThenLookup(t *testing.T) {
	t.Parallel()

	r := router.New()

	invoked := false
	r.Get("/ping", func(req *httpx.Request, resp *httpx.Response) {
		invoked = true
		resp.Text("pong")
	})

	_, resp, found := dispatch(r, httpx.MethodGet, "/ping")

	require.True(t, found)
	assert.True(t, invoked, "the handler registered for the route must run")
	assert.Equal(t, "pong", string(resp.Body))
}

func TestRouterLastRegistrationWins(t *testing.T) {
	t.Parallel()

	t.Run("static", func(t *testing.T) {
		r := router.New()
		r.Get("/dup", echo("first"))
		r.Get("/dup", echo("second"))

		_, resp, found := dispatch(r, httpx.MethodGet, "/dup")
		require.True(t, found)
		assert.Equal(t, "second", string(resp.Body))
	})

	t.Run("trie", func(t *testing.T) {
		r := router.New()
		r.Get("/dup/:id", echo("first"))
		r.Get("/dup/:id", echo("second"))

		_, resp, found := dispatch(r, httpx.MethodGet, "/dup/1")
		require.True(t, found)
		assert.Equal(t, "second", string(resp.Body))
	})
}

func TestRouterMethodMiss(t *testing.T) {
	t.Parallel()

	r := router.New()
	r.Post("/submit", echo("created"))

	_, resp, found := dispatch(r, httpx.MethodGet, "/submit")

	assert.False(t, found)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouterDefaultNotFound(t *testing.T) {
	t.Parallel()

	r := router.New()

	_, resp, found := dispatch(r, httpx.MethodGet, "/missing")

	assert.False(t, found)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, httpx.ContentTypeHTML, resp.Header.Get("Content-Type"))
	assert.Contains(t, string(resp.Body), "<h1>404 Not Found</h1>")
}

func TestRouterCustomNotFound(t *testing.T) {
	t.Parallel()

	r := router.New(router.WithNotFound(handler.Wrap(
		func(req *httpx.Request, resp *httpx.Response) {
			resp.Status(http.StatusNotFound).Text("nothing here")
		})))

	_, resp, found := dispatch(r, httpx.MethodGet, "/missing")

	assert.False(t, found)
	assert.Equal(t, "nothing here", string(resp.Body))
	assert.Equal(t, httpx.ContentTypeText, resp.Header.Get("Content-Type"))
}

type objectHandler struct {
	calls int
}

func (h *objectHandler) Handle(req *httpx.Request, resp *httpx.Response) {
	h.calls++
	resp.Text("object")
}

func TestRouterObjectHandler(t *testing.T) {
	t.Parallel()

	r := router.New()
	oh := &objectHandler{}
	r.Handle(httpx.MethodGet, "/obj/:id", handler.WrapHandler(oh))

	req, resp, found := dispatch(r, httpx.MethodGet, "/obj/3")

	require.True(t, found)
	assert.Equal(t, 1, oh.calls)
	assert.Equal(t, "object", string(resp.Body))
	assert.Equal(t, "3", req.Param("id"))
}

func TestRouterHandleAllMethods(t *testing.T) {
	t.Parallel()

	r := router.New()
	r.Handle(httpx.MethodAll, "/any", handler.Wrap(echo("any")))

	for _, m := range []httpx.Method{httpx.MethodGet, httpx.MethodPost, httpx.MethodDelete, httpx.MethodPut} {
		_, resp, found := dispatch(r, m, "/any")

		require.True(t, found, m.String())
		assert.Equal(t, "any", string(resp.Body))
	}
}

func TestRouterInvalidRegistrations(t *testing.T) {
	t.Parallel()

	r := router.New()

	assert.Panics(t, func() { r.Get("no-slash", echo("x")) })
	assert.Panics(t, func() { r.Handle(0, "/x", handler.Wrap(echo("x"))) })
	assert.Panics(t, func() { r.Handle(httpx.MethodGet, "/x", handler.Wrapper{}) })
}

func TestRouterRoutes(t *testing.T) {
	t.Parallel()

	r := router.New()
	r.Get("/static", echo("s"))
	r.Post("/users/:id", echo("p"))
	require.NoError(t, r.HandleRegex(httpx.MethodGet, `/rx/([0-9]+)`, []string{"n"}, handler.Wrap(echo("r"))))

	rts := r.Routes()
	require.Len(t, rts, 3)

	patterns := make(map[string]string, len(rts))
	for _, rt := range rts {
		patterns[rt.Pattern] = rt.Method
	}
	assert.Equal(t, http.MethodGet, patterns["/static"])
	assert.Equal(t, http.MethodPost, patterns["/users/:id"])
	assert.Equal(t, http.MethodGet, patterns[`/rx/([0-9]+)`])
}

func TestRouterScenarioVeto(t *testing.T) {
	t.Parallel()

	// Global M1 vetoes: the handler and M2's before hook are skipped,
	// after hooks run as M2.after then M1.after, and the return value
	// still reports the route as found.
	var log []string
	m1 := &recordingMiddleware{name: "m1", log: &log, veto: true}
	m2 := &recordingMiddleware{name: "m2", log: &log}

	r := router.New(router.WithMiddleware(m1, m2))
	r.Get("/guarded", func(req *httpx.Request, resp *httpx.Response) {
		log = append(log, "handler")
	})

	_, _, found := dispatch(r, httpx.MethodGet, "/guarded")

	assert.True(t, found)
	assert.Equal(t, []string{"m1.before", "m2.after", "m1.after"}, log)
}

func TestRouterConcurrentLookups(t *testing.T) {
	t.Parallel()

	r := router.New()
	r.Get("/users/:id", func(req *httpx.Request, resp *httpx.Response) {
		resp.Text(req.Param("id"))
	})
	r.Get("/static/path", echo("static"))

	done := make(chan struct{})
	for n := 0; n < 8; n++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 200; i++ {
				req, resp, found := dispatch(r, httpx.MethodGet, "/users/7")
				if !found || req.Param("id") != "7" || string(resp.Body) != "7" {
					t.Error("concurrent lookup returned wrong result")
					return
				}
			}
		}()
	}
	for n := 0; n < 8; n++ {
		<-done
	}
}
