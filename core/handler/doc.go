// Package handler defines the invocable capabilities the router dispatches
// to: plain callbacks, handler objects, and before/after middlewares.
//
// A route handler is either a Func or any type implementing Handler; both
// are stored behind the Wrapper tagged union so the routing tables hold a
// single uniform value:
//
//	r.Handle(httpx.MethodGet, "/health", handler.Wrap(func(req *httpx.Request, resp *httpx.Response) {
//		resp.Text("ok")
//	}))
//
//	r.Handle(httpx.MethodGet, "/users/:id", handler.WrapHandler(&userHandler{store: store}))
//
// Middlewares run around handler invocation. Before hooks execute in
// registration order and may veto the handler by returning false; After
// hooks always execute, in reverse order, even after a veto.
package handler
