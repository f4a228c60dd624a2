package pickup_put

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	reasonDailyLimit  = "daily_limit"
	reasonWorkWindow  = "work_window"
	reasonNotFound    = "not_found"
	reasonInvalidData = "invalid_input"
)

var (
	PickupsScheduledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pickups_scheduled_total",
			Help: "Total number of pickups accepted by the assignment validator",
		},
	)

	PickupsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pickups_rejected_total",
			Help: "Total number of pickups rejected by the assignment validator",
		},
		[]string{"reason"},
	)
)
