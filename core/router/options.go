package router

import (
	"log/slog"

	"github.com/keelhttp/keel/core/handler"
)

// Option configures a Router during creation.
type Option func(*Router)

// WithLogger sets a custom logger for the router.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithNotFound sets a custom not-found handler.
func WithNotFound(h handler.Wrapper) Option {
	return func(r *Router) {
		r.SetNotFound(h)
	}
}

// WithMiddleware adds global middleware to the router.
func WithMiddleware(mws ...handler.Middleware) Option {
	return func(r *Router) {
		r.middlewares = append(r.middlewares, mws...)
	}
}
