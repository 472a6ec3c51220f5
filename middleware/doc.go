// Package middleware provides reusable before/after middlewares for the
// routing core: request-ID stamping, structured request logging, and
// token-bucket rate limiting.
//
// Each middleware comes in a zero-config constructor and a WithConfig
// variant:
//
//	r.Use(
//		middleware.RequestID(),
//		middleware.LoggingWithConfig(middleware.LoggingConfig{
//			Logger: slog.Default(),
//			Skip: func(req *httpx.Request) bool {
//				return req.Path == "/health"
//			},
//		}),
//		middleware.RateLimit(100, 200),
//	)
package middleware
