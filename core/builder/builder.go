package builder

import (
	"errors"
	"log/slog"

	"github.com/keelhttp/keel/core/config"
	"github.com/keelhttp/keel/core/handler"
	"github.com/keelhttp/keel/core/httpx"
	"github.com/keelhttp/keel/core/router"
)

var ErrInvalidConfig = errors.New("invalid server config")

// routeReg is one recorded registration, replayed in order at Build.
type routeReg struct {
	method     httpx.Method
	pattern    string
	h          handler.Wrapper
	regex      bool
	paramNames []string
}

type scopedMiddleware struct {
	pattern string
	mws     []handler.Middleware
}

// Builder accumulates configuration, middlewares and routes, then
// produces a populated Router plus validated settings.
type Builder struct {
	cfg      Config
	logger   *slog.Logger
	mws      []handler.Middleware
	scoped   []scopedMiddleware
	routes   []routeReg
	notFound handler.Wrapper
	err      error
}

// New creates a builder with default settings.
func New() *Builder {
	return &Builder{cfg: defaultConfig()}
}

// Listen sets the listener address recorded for the transport collaborator.
func (b *Builder) Listen(host string, port int) *Builder {
	b.cfg.Host = host
	b.cfg.Port = port
	return b
}

// Workers sets the worker count recorded for the transport collaborator.
func (b *Builder) Workers(n int) *Builder {
	b.cfg.Workers = n
	return b
}

// LogLevel sets the textual log level (debug, info, warn, error).
func (b *Builder) LogLevel(level string) *Builder {
	b.cfg.LogLevel = level
	return b
}

// ServerName sets the server name reported by the transport collaborator.
func (b *Builder) ServerName(name string) *Builder {
	b.cfg.ServerName = name
	return b
}

// Logger sets the structured logger handed to the router.
func (b *Builder) Logger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

// FromEnv loads settings from the environment, replacing values set so
// far. A load failure is latched and surfaces in Build.
func (b *Builder) FromEnv() *Builder {
	if b.err != nil {
		return b
	}
	if err := config.Load(&b.cfg); err != nil {
		b.err = err
	}
	return b
}

// Use appends global middleware.
func (b *Builder) Use(mws ...handler.Middleware) *Builder {
	b.mws = append(b.mws, mws...)
	return b
}

// UseOn attaches middleware to a path or pattern, with the router's
// UseOn scoping rules.
func (b *Builder) UseOn(pattern string, mws ...handler.Middleware) *Builder {
	b.scoped = append(b.scoped, scopedMiddleware{pattern: pattern, mws: mws})
	return b
}

// Get registers a callback for GET requests.
func (b *Builder) Get(pattern string, fn handler.Func) *Builder {
	return b.Handle(httpx.MethodGet, pattern, handler.Wrap(fn))
}

// Post registers a callback for POST requests.
func (b *Builder) Post(pattern string, fn handler.Func) *Builder {
	return b.Handle(httpx.MethodPost, pattern, handler.Wrap(fn))
}

// Put registers a callback for PUT requests.
func (b *Builder) Put(pattern string, fn handler.Func) *Builder {
	return b.Handle(httpx.MethodPut, pattern, handler.Wrap(fn))
}

// Delete registers a callback for DELETE requests.
func (b *Builder) Delete(pattern string, fn handler.Func) *Builder {
	return b.Handle(httpx.MethodDelete, pattern, handler.Wrap(fn))
}

// Handle registers a handler wrapper for (method, pattern).
func (b *Builder) Handle(method httpx.Method, pattern string, h handler.Wrapper) *Builder {
	b.routes = append(b.routes, routeReg{method: method, pattern: pattern, h: h})
	return b
}

// HandleRegex registers a handler under a full-path regex pattern.
// Compilation happens at Build; a malformed pattern fails the build.
func (b *Builder) HandleRegex(method httpx.Method, pattern string, paramNames []string, h handler.Wrapper) *Builder {
	b.routes = append(b.routes, routeReg{
		method:     method,
		pattern:    pattern,
		h:          h,
		regex:      true,
		paramNames: paramNames,
	})
	return b
}

// NotFound replaces the default 404 handler.
func (b *Builder) NotFound(h handler.Wrapper) *Builder {
	b.notFound = h
	return b
}

// Build validates the settings, assembles the router, and replays all
// recorded registrations onto it. It returns the first error latched
// during building.
func (b *Builder) Build() (*router.Router, Config, error) {
	if b.err != nil {
		return nil, b.cfg, b.err
	}
	if err := b.cfg.Validate(); err != nil {
		return nil, b.cfg, err
	}

	opts := []router.Option{router.WithMiddleware(b.mws...)}
	if b.logger != nil {
		opts = append(opts, router.WithLogger(b.logger))
	}
	if b.notFound.Valid() {
		opts = append(opts, router.WithNotFound(b.notFound))
	}

	r := router.New(opts...)

	for _, rt := range b.routes {
		if rt.regex {
			if err := r.HandleRegex(rt.method, rt.pattern, rt.paramNames, rt.h); err != nil {
				return nil, b.cfg, err
			}
			continue
		}
		r.Handle(rt.method, rt.pattern, rt.h)
	}

	// Scoped middleware attaches after routes so regex patterns find
	// their table entries.
	for _, sm := range b.scoped {
		r.UseOn(sm.pattern, sm.mws...)
	}

	return r, b.cfg, nil
}
