package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// route - шаблон mux, а не сырой путь, чтобы id не раздували кардинальность
	RequestsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_rate_limited_requests_total",
			Help: "HTTP requests rejected with 429 by the token bucket",
		},
		[]string{"route"},
	)

	RequestsAllowedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limiter_allowed_total",
			Help: "HTTP requests that passed the token bucket",
		},
	)
)
