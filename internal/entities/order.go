package entities

import "time"

type Order struct {
	ID            int64
	Product       string
	DeliverymanID int64
	RecipientID   int64
	SignatureID   *int64
	StartDate     *time.Time
	EndDate       *time.Time
	CanceledAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Recipient *Recipient
}

func (o *Order) IsCanceled() bool {
	return o.CanceledAt != nil
}

func (o *Order) IsPickedUp() bool {
	return o.StartDate != nil
}

func (o *Order) IsDelivered() bool {
	return o.EndDate != nil
}

type OrderStatusType string

const (
	OrderCanceled  OrderStatusType = "canceled"
	OrderDelivered OrderStatusType = "delivered"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// OrderStatusEvent приходит от dispatch-процесса через Kafka.
type OrderStatusEvent struct {
	OrderID    int64
	Status     OrderStatusType
	OccurredAt time.Time
}
