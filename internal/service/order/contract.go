//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"logistics/internal/entities"
)

type PickupService interface {
	CancelOrder(ctx context.Context, event entities.OrderStatusEvent) (*entities.Order, error)
	CompleteOrder(ctx context.Context, event entities.OrderStatusEvent) (*entities.Order, error)
}

type (
	ExecuteFn      func(ctx context.Context, event entities.OrderStatusEvent) (*entities.Order, error)
	HandlerFactory interface {
		GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
	}
)
