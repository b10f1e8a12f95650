package rate_limiter

import (
	"net"
	"net/http"
	"strconv"

	"takeout/internal/pkg/middlewares/metrics"
	"takeout/pkg/logger"
)

// KeyFunc выбирает бакет для запроса.
type KeyFunc func(r *http.Request) string

// ByRemoteIP - ключ по адресу клиента без порта.
func ByRemoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Middleware пропускает запрос, если в бакете ключа есть токен, иначе отвечает 429.
func Middleware(log handlerLogger, rateLimiterQPS int, limiter Limiter, keyFn KeyFunc) func(http.Handler) http.Handler {
	if keyFn == nil {
		keyFn = ByRemoteIP
	}
	sizer, _ := limiter.(interface{ Len() int })

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFn(r)
			allowed := limiter.AllowKey(key)
			if sizer != nil {
				RateLimiterBuckets.Set(float64(sizer.Len()))
			}
			if allowed {
				next.ServeHTTP(w, r)
				return
			}

			route := metrics.RouteTemplate(r)
			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", route),
				logger.NewField("key", key),
			).Warn("rate limit exceeded")

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rateLimiterQPS))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			_, err := w.Write([]byte(`{"error":"Too Many Requests","message":"Rate limit exceeded. Try again later."}`))
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Error("failed to write rate limit response")
			}
		})
	}
}
