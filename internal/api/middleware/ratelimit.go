package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/sereno-app/sereno/internal/config"
	"github.com/sereno-app/sereno/pkg/httpext"
	"github.com/sereno-app/sereno/pkg/logger"
	"github.com/sereno-app/sereno/pkg/ratelimit"
)

// RateLimit bounds each caller to maxHits requests per window on the routes
// it wraps. A disabled config passes every request through.
func RateLimit(group string, cfg config.RateLimitConfig, maxHits int) func(http.Handler) http.Handler {
	limiter := ratelimit.NewLimiter(cfg.Window, maxHits)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled {
				next.ServeHTTP(w, r)
				return
			}

			ip := clientIP(r, cfg.TrustProxy)
			allowed, retryAfter := limiter.Allow(ip)
			if !allowed {
				logger.Warn(logger.MIDDLEWARE, "Rate limit exceeded for %s on %s", ip, group)
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
				httpext.JsonError(w, "Demasiadas solicitudes, inténtalo más tarde", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP is the remote host without its port. X-Forwarded-For is honoured
// only when the service sits behind a trusted proxy; otherwise any caller
// could pick a fresh key per request.
func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			first, _, _ := strings.Cut(forwarded, ",")
			return strings.TrimSpace(first)
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
