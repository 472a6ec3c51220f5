package middleware

import (
	"github.com/google/uuid"

	"github.com/keelhttp/keel/core/handler"
	"github.com/keelhttp/keel/core/httpx"
)

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(req *httpx.Request) bool
	// Generator creates new request IDs (default: UUID v4)
	Generator func() string
	// HeaderName specifies the header name for the request ID (default: "X-Request-ID")
	HeaderName string
	// UseExisting determines whether to keep a request ID already present
	// on the incoming request
	UseExisting bool
}

// RequestID creates a request ID middleware with default configuration.
// It stamps a new UUID on each request and mirrors it on the response.
func RequestID() handler.Middleware {
	return RequestIDWithConfig(RequestIDConfig{})
}

// RequestIDWithConfig creates a request ID middleware with custom
// configuration. The ID is written to both the request and response
// headers so handlers and upstream log collectors see the same value.
func RequestIDWithConfig(cfg RequestIDConfig) handler.Middleware {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}

	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	return handler.MiddlewareFuncs{
		BeforeFunc: func(req *httpx.Request, resp *httpx.Response) bool {
			if cfg.Skip != nil && cfg.Skip(req) {
				return true
			}

			var requestID string
			if cfg.UseExisting {
				requestID = req.Header.Get(cfg.HeaderName)
			}
			if requestID == "" {
				requestID = cfg.Generator()
				req.Header.Set(cfg.HeaderName, requestID)
			}

			resp.SetHeader(cfg.HeaderName, requestID)
			return true
		},
	}
}
