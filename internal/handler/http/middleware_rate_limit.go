package http

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-logistics/internal/logger"
	"github.com/MKhiriev/go-logistics/internal/utils"
)

// withRateLimit applies the token bucket to each client and route. The
// bucket key combines the client IP, set by middleware.RealIP, with the
// method and path. When the limiter itself fails the request is let through.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := rateLimitKey(r)

		decision, err := h.limiter.Allow(r.Context(), key)
		if err != nil {
			logger.FromRequest(r).Err(err).Str("func", "Handler.withRateLimit").Str("key", key).Msg("rate limiter unavailable")
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(decision.Remaining, 10))

		if !decision.Allowed {
			seconds := int(math.Ceil(decision.RetryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(seconds))

			logger.FromRequest(r).Info().Str("key", key).Msg("rate limit exceeded")
			utils.WriteError(w, msgRateLimited, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func rateLimitKey(r *http.Request) string {
	return fmt.Sprintf("ip:%s:%s %s", clientIP(r), r.Method, r.URL.Path)
}

// clientIP strips the port RemoteAddr carries when RealIP did not replace it.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
