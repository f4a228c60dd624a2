package order_status_changed

import (
	"time"

	"logistics/internal/entities"
)

// statusChangedEvent сообщение топика order.status.changed.
type statusChangedEvent struct {
	OrderID    int64     `json:"order_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e statusChangedEvent) toEntity() entities.OrderStatusEvent {
	return entities.OrderStatusEvent{
		OrderID:    e.OrderID,
		Status:     entities.OrderStatusType(e.Status),
		OccurredAt: e.OccurredAt,
	}
}
