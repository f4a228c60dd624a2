package order_handle

import (
	"context"
	"fmt"

	"logistics/internal/entities"
	"logistics/internal/service/order"
)

type StatusHandlerFactory struct {
	pickupService order.PickupService
}

func NewStatusHandlerFactory(pickupService order.PickupService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		pickupService: pickupService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (order.ExecuteFn, error) {
	switch status {
	case entities.OrderCanceled:
		return f.canceledHandler, nil
	case entities.OrderDelivered:
		return f.deliveredHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) canceledHandler(ctx context.Context, event entities.OrderStatusEvent) (*entities.Order, error) {
	canceled, err := f.pickupService.CancelOrder(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("cancel order %d: %w", event.OrderID, err)
	}
	return canceled, nil
}

func (f *StatusHandlerFactory) deliveredHandler(ctx context.Context, event entities.OrderStatusEvent) (*entities.Order, error) {
	delivered, err := f.pickupService.CompleteOrder(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("complete order %d: %w", event.OrderID, err)
	}
	return delivered, nil
}
