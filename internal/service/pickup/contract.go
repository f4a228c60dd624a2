//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pickup_test
package pickup

import (
	"context"
	"time"

	"logistics/internal/entities"
)

type Repository interface {
	// LockDeliveryman блокирует строку курьера до конца транзакции.
	LockDeliveryman(ctx context.Context, deliverymanID int64) error
	DeliverymanExists(ctx context.Context, deliverymanID int64) error

	CountPickupsBetween(ctx context.Context, deliverymanID int64, from, to time.Time) (int64, error)
	CountAllPickupsBetween(ctx context.Context, from, to time.Time) (int64, error)

	GetByID(ctx context.Context, orderID int64) (*entities.Order, error)
	GetPickups(ctx context.Context, filter entities.PickupFilter) ([]entities.Order, error)
	CountPickups(ctx context.Context, filter entities.PickupFilter) (int64, error)

	UpdateStartDate(ctx context.Context, orderID int64, startDate time.Time) (*entities.Order, error)
	SetEndDate(ctx context.Context, orderID int64, endDate time.Time, signatureID *int64) (*entities.Order, error)
	SetCanceledAt(ctx context.Context, orderID int64, canceledAt time.Time) (*entities.Order, error)
}

type WorkWindowFactory interface {
	Now() time.Time
	Location() *time.Location
	CalculateWindow(baseTime time.Time) entities.WorkWindow
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
