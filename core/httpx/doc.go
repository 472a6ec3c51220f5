// Package httpx defines the request and response value types the routing
// core operates on. A Request is produced by an external wire parser and
// handed to the router; handlers and middlewares mutate the Response in
// place. Neither type owns a socket or performs I/O.
//
// Requests carry a mutable path-parameter mapping which the router fills
// during matching:
//
//	req := httpx.NewRequest(httpx.MethodGet, "/users/42")
//	// after routing:
//	id := req.Param("id") // "42"
//
// Responses default to 200 OK and expose chainable convenience setters:
//
//	resp.Status(201).JSON(map[string]string{"status": "created"})
package httpx
