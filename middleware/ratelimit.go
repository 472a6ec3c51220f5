package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/keelhttp/keel/core/handler"
	"github.com/keelhttp/keel/core/httpx"
)

// RateLimitConfig configures the rate limiting middleware.
type RateLimitConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(req *httpx.Request) bool

	// RPS is the sustained requests-per-second budget (default: 100)
	RPS int

	// Burst is the instantaneous burst capacity (default: RPS)
	Burst int
}

// RateLimit creates a token-bucket rate limiting middleware. Requests
// beyond the budget are vetoed with a 429 response; the rest of the
// middleware chain's after hooks still run.
func RateLimit(rps, burst int) handler.Middleware {
	return RateLimitWithConfig(RateLimitConfig{RPS: rps, Burst: burst})
}

// RateLimitWithConfig creates a rate limiting middleware with custom
// configuration. The limiter never blocks: over-budget requests are
// rejected immediately.
func RateLimitWithConfig(cfg RateLimitConfig) handler.Middleware {
	if cfg.RPS <= 0 {
		cfg.RPS = 100
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RPS
	}

	limiter := rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst)

	return handler.MiddlewareFuncs{
		BeforeFunc: func(req *httpx.Request, resp *httpx.Response) bool {
			if cfg.Skip != nil && cfg.Skip(req) {
				return true
			}

			if !limiter.Allow() {
				resp.Status(http.StatusTooManyRequests).
					Text("429 Too Many Requests")
				return false
			}
			return true
		},
	}
}
