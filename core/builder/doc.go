// Package builder offers a chainable API for assembling a router and the
// listener settings the external transport collaborator needs:
//
//	r, cfg, err := builder.New().
//		Listen("0.0.0.0", 8080).
//		Workers(4).
//		Use(middleware.RequestID()).
//		Get("/", func(req *httpx.Request, resp *httpx.Response) {
//			resp.HTML("<h1>Welcome</h1>")
//		}).
//		Get("/api/users/:id", getUser).
//		NotFound(handler.Wrap(custom404)).
//		Build()
//
// Registrations are recorded and replayed onto a fresh router when Build
// runs. The first registration or validation error is latched and
// returned by Build.
package builder
