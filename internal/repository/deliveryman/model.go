package deliveryman

import "time"

type DeliverymanDB struct {
	ID        int64
	Name      string
	Email     string
	AvatarID  *int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DeliverymanModifyDB struct {
	ID       *int64
	Name     *string
	Email    *string
	AvatarID *int64
}
