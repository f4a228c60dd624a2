package rate_limiter

import (
	"errors"
	"net/http"
	"strconv"

	"logistics/internal/handlers/rest/response"
	"logistics/internal/pkg/middlewares/request_id"
	"logistics/internal/pkg/middlewares/route"
	"logistics/pkg/logger"
)

var errRateLimited = errors.New("rate limit exceeded, try again later")

// Middleware отклоняет запросы с 429, когда у limiter кончились токены.
// limit уходит клиенту в X-RateLimit-Limit.
func Middleware(log handlerLogger, limit int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				RequestsAllowedTotal.Inc()
				next.ServeHTTP(w, r)
				return
			}

			handlerPath := route.Template(r)
			RequestsRejectedTotal.WithLabelValues(handlerPath).Inc()

			reqLog := log.With(
				logger.NewField("request_id", request_id.FromContext(r.Context())),
				logger.NewField("method", r.Method),
				logger.NewField("route", handlerPath),
				logger.NewField("remote_addr", r.RemoteAddr),
			)
			reqLog.Warn("rate limit exceeded")

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("Retry-After", "1")

			err := response.WriteError(w, http.StatusTooManyRequests, errRateLimited)
			if err != nil {
				reqLog.With(logger.NewField("error", err)).Error("write rate limit response")
			}
		})
	}
}
