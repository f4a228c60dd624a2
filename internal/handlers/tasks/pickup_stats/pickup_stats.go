package pickup_stats

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"logistics/pkg/logger"
)

var PickupsScheduledToday = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "pickups_scheduled_today",
		Help: "Number of non-canceled pickups scheduled for the current day across all deliverymen",
	},
)

type Service interface {
	CountTodayPickups(ctx context.Context) (int64, error)
}

type gauge interface {
	Set(float64)
}

// PickupStats периодически обновляет гейдж с числом заборов на сегодня.
type PickupStats struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	gauge    gauge
}

func NewPickupStats(log logger.Logger, service Service, interval time.Duration) *PickupStats {
	return &PickupStats{
		log:      log,
		service:  service,
		interval: interval,
		gauge:    PickupsScheduledToday,
	}
}

func (p *PickupStats) TTL() time.Duration {
	return p.interval
}

func (p *PickupStats) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	count, err := p.service.CountTodayPickups(ctxWithTimeout)
	if err != nil {
		return err
	}

	p.gauge.Set(float64(count))
	p.log.With(
		logger.NewField("pickups_today", count),
	).Info("pickup stats updated")

	return nil
}

func (p *PickupStats) Info() string {
	return "pickup stats"
}
