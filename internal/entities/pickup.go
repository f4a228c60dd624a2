package entities

import "time"

type PickupSchedule struct {
	DeliverymanID int64
	OrderID       int64
	StartDate     string
}

type DeliveryFinish struct {
	DeliverymanID int64
	OrderID       int64
	SignatureID   int64
}

type PickupState string

const (
	PickupActive    PickupState = "active"
	PickupCompleted PickupState = "completed"
)

func (s PickupState) String() string {
	return string(s)
}

type PickupFilter struct {
	DeliverymanID int64
	State         PickupState
	Limit         uint64
	Offset        uint64
}

type PickupPage struct {
	Orders []Order
	Total  int64
	Page   int
}

// WorkWindow границы дня и рабочего окна, в которое разрешен забор заказа.
type WorkWindow struct {
	DayStart  time.Time
	DayEnd    time.Time
	WorkStart time.Time
	WorkEnd   time.Time
}
