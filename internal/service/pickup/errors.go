package pickup

import "errors"

var (
	ErrInvalidDeliverymanID = errors.New("invalid deliveryman id")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidStartDate     = errors.New("invalid start date")
	ErrInvalidPage          = errors.New("invalid page")
	ErrInvalidSignatureID   = errors.New("invalid signature id")

	ErrDeliverymanNotFound = errors.New("deliveryman not found")
	ErrOrderNotFound       = errors.New("order not found")

	ErrDailyLimitExceeded = errors.New("daily pickup limit exceeded")
	ErrOutsideWorkWindow  = errors.New("pickup time outside of work window")

	ErrOrderNotAssigned      = errors.New("order is not assigned to deliveryman")
	ErrOrderCanceled         = errors.New("order is canceled")
	ErrOrderNotPickedUp      = errors.New("order is not picked up")
	ErrOrderAlreadyDelivered = errors.New("order already delivered")
)
