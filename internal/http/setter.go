package http

import (
	"github.com/rogerio-castellano/vigilio-gateway/internal/http/ban"
	rl "github.com/rogerio-castellano/vigilio-gateway/internal/http/rate_limiter"
)

// nil disables the corresponding check.
var (
	limiter *rl.Limiter
	banner  *ban.Banner

	trustProxyHeaders bool
)

func SetRateLimiter(l *rl.Limiter) {
	limiter = l
}

func SetBanner(b *ban.Banner) {
	banner = b
}

// SetTrustProxyHeaders makes the client IP come from X-Forwarded-For and
// X-Real-IP. Only enable it behind a proxy that overwrites those headers.
func SetTrustProxyHeaders(trust bool) {
	trustProxyHeaders = trust
}
