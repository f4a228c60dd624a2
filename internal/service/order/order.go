package order

import (
	"context"
	"fmt"

	"logistics/internal/entities"
)

type Service struct {
	statusFactory HandlerFactory
}

func New(statusFactory HandlerFactory) *Service {
	return &Service{
		statusFactory: statusFactory,
	}
}

// ProcessOrderStatusChange применяет событие dispatch-процесса к заказу.
// Для статусов без обработчика возвращается ErrUndefinedStatus, такие события пропускаются.
func (s *Service) ProcessOrderStatusChange(ctx context.Context, event entities.OrderStatusEvent) (*entities.Order, error) {
	if event.OrderID <= 0 || event.Status == "" {
		return nil, ErrInvalidEvent
	}

	executeFn, err := s.statusFactory.GetHandler(event.Status)
	if err != nil {
		return nil, err
	}

	order, err := executeFn(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("apply %s status: %w", event.Status, err)
	}

	return order, nil
}
