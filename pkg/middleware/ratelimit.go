package middleware

import (
	"math"
	"net/http"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/vfg2006/sales-charts-api/pkg/apiErrors"
	"github.com/vfg2006/sales-charts-api/pkg/log"
)

// RateLimit aplica um token bucket global. rps <= 0 desliga o limite.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	if burst < 1 {
		burst = int(math.Ceil(rps))
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	retryAfter := strconv.Itoa(int(math.Max(1, math.Ceil(1/rps))))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions || limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			log.ForContext(r.Context()).WithField("path", r.URL.Path).Warn("Limite de requisições excedido")

			w.Header().Set("Retry-After", retryAfter)
			apiErrors.WriteError(w, apiErrors.ErrRateLimited, "Muitas requisições, tente novamente em instantes", nil)
		})
	}
}
