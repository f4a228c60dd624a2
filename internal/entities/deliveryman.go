package entities

import (
	"time"
)

type Deliveryman struct {
	ID        int64
	Name      string
	Email     string
	AvatarID  *int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DeliverymanModify struct {
	ID       *int64
	Name     *string
	Email    *string
	AvatarID *int64
}
