package middleware

import (
	"context"
	"io"
	"log/slog"

	"github.com/keelhttp/keel/core/handler"
	"github.com/keelhttp/keel/core/httpx"
)

// LoggingConfig configures the request/response logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(req *httpx.Request) bool

	// Logger is the slog logger to use (default: no-op logger)
	Logger *slog.Logger

	// LogLevel for request logging (default: slog.LevelInfo)
	LogLevel slog.Level
}

// Logging creates a request logging middleware with default configuration.
func Logging() handler.Middleware {
	return LoggingWithConfig(LoggingConfig{})
}

// LoggingWithConfig creates a request logging middleware: the before hook
// logs the incoming method and path, the after hook logs the response
// status once dispatch unwinds.
func LoggingWithConfig(cfg LoggingConfig) handler.Middleware {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &loggingMiddleware{cfg: cfg}
}

type loggingMiddleware struct {
	cfg LoggingConfig
}

func (l *loggingMiddleware) Before(req *httpx.Request, resp *httpx.Response) bool {
	if l.cfg.Skip != nil && l.cfg.Skip(req) {
		return true
	}

	l.cfg.Logger.Log(context.Background(), l.cfg.LogLevel, "request started",
		"method", req.Method.String(),
		"path", req.Path,
	)
	return true
}

func (l *loggingMiddleware) After(req *httpx.Request, resp *httpx.Response) {
	if l.cfg.Skip != nil && l.cfg.Skip(req) {
		return
	}

	l.cfg.Logger.Log(context.Background(), l.cfg.LogLevel, "request completed",
		"method", req.Method.String(),
		"path", req.Path,
		"status", resp.StatusCode,
	)
}
