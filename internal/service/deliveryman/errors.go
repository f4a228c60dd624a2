package deliveryman

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDeliverymanID  = errors.New("invalid deliveryman id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidAvatarID       = errors.New("invalid avatar id")

	ErrDeliverymanNotFound  = errors.New("deliveryman not found")
	ErrDeliverymanHasOrders = errors.New("deliveryman has orders")
	ErrConflict             = errors.New("resource already exists")
)
