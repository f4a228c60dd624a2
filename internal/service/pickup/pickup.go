package pickup

import (
	"context"
	"fmt"
	"time"

	"logistics/internal/entities"
	"logistics/internal/pkg/config"
)

type Pickup struct {
	repository    Repository
	windowFactory WorkWindowFactory
	txManager     TxManager

	dailyLimit int64
	pageSize   uint64
}

func New(
	repository Repository,
	windowFactory WorkWindowFactory,
	txManager TxManager,
	cfg *config.Pickup,
) *Pickup {
	return &Pickup{
		repository:    repository,
		windowFactory: windowFactory,
		txManager:     txManager,
		dailyLimit:    cfg.DailyLimit,
		pageSize:      cfg.PageSize,
	}
}

// SchedulePickup проверяет, может ли курьер забрать заказ в предложенное время,
// и сохраняет его как start_date заказа. Проверки идут по порядку,
// первая неудачная прерывает операцию без изменений в БД.
func (p *Pickup) SchedulePickup(ctx context.Context, schedule entities.PickupSchedule) (*entities.Order, error) {
	if !isValidID(schedule.DeliverymanID) {
		return nil, ErrInvalidDeliverymanID
	}
	if !isValidID(schedule.OrderID) {
		return nil, ErrInvalidOrderID
	}

	proposed, err := parseStartDate(schedule.StartDate, p.windowFactory.Location())
	if err != nil {
		return nil, err
	}

	// "сегодня" считается от текущего времени сервера, а не от proposed
	window := p.windowFactory.CalculateWindow(p.windowFactory.Now())

	var scheduled *entities.Order
	err = p.txManager.Do(ctx, func(ctx context.Context) error {
		err := p.repository.LockDeliveryman(ctx, schedule.DeliverymanID)
		if err != nil {
			return fmt.Errorf("lock deliveryman: %w", err)
		}

		count, err := p.repository.CountPickupsBetween(ctx, schedule.DeliverymanID, window.DayStart, window.DayEnd)
		if err != nil {
			return fmt.Errorf("count today pickups: %w", err)
		}
		if count > p.dailyLimit {
			return ErrDailyLimitExceeded
		}

		_, err = p.repository.GetByID(ctx, schedule.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if !isInsideWorkWindow(proposed, window.WorkStart, window.WorkEnd) {
			return ErrOutsideWorkWindow
		}

		scheduled, err = p.repository.UpdateStartDate(ctx, schedule.OrderID, proposed)
		if err != nil {
			return fmt.Errorf("update start date: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return scheduled, nil
}

func (p *Pickup) ListActivePickups(ctx context.Context, deliverymanID int64, page int) (*entities.PickupPage, error) {
	return p.listPickups(ctx, deliverymanID, entities.PickupActive, page)
}

func (p *Pickup) ListCompletedPickups(ctx context.Context, deliverymanID int64, page int) (*entities.PickupPage, error) {
	return p.listPickups(ctx, deliverymanID, entities.PickupCompleted, page)
}

func (p *Pickup) listPickups(ctx context.Context, deliverymanID int64, state entities.PickupState, page int) (*entities.PickupPage, error) {
	if !isValidID(deliverymanID) {
		return nil, ErrInvalidDeliverymanID
	}
	if page < 1 {
		return nil, ErrInvalidPage
	}

	err := p.repository.DeliverymanExists(ctx, deliverymanID)
	if err != nil {
		return nil, fmt.Errorf("check deliveryman: %w", err)
	}

	filter := entities.PickupFilter{
		DeliverymanID: deliverymanID,
		State:         state,
		Limit:         p.pageSize,
		Offset:        uint64(page-1) * p.pageSize,
	}

	orders, err := p.repository.GetPickups(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get %s pickups: %w", state, err)
	}

	total, err := p.repository.CountPickups(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count %s pickups: %w", state, err)
	}

	return &entities.PickupPage{
		Orders: orders,
		Total:  total,
		Page:   page,
	}, nil
}

func (p *Pickup) FinishDelivery(ctx context.Context, finish entities.DeliveryFinish) (*entities.Order, error) {
	if !isValidID(finish.DeliverymanID) {
		return nil, ErrInvalidDeliverymanID
	}
	if !isValidID(finish.OrderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidID(finish.SignatureID) {
		return nil, ErrInvalidSignatureID
	}

	var finished *entities.Order
	err := p.txManager.Do(ctx, func(ctx context.Context) error {
		err := p.repository.DeliverymanExists(ctx, finish.DeliverymanID)
		if err != nil {
			return fmt.Errorf("check deliveryman: %w", err)
		}

		order, err := p.repository.GetByID(ctx, finish.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		switch {
		case order.DeliverymanID != finish.DeliverymanID:
			return ErrOrderNotAssigned
		case order.IsCanceled():
			return ErrOrderCanceled
		case !order.IsPickedUp():
			return ErrOrderNotPickedUp
		case order.IsDelivered():
			return ErrOrderAlreadyDelivered
		}

		finished, err = p.repository.SetEndDate(ctx, finish.OrderID, p.windowFactory.Now(), &finish.SignatureID)
		if err != nil {
			return fmt.Errorf("set end date: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return finished, nil
}

// CancelOrder помечает заказ отмененным. Повторная отмена ничего не меняет.
func (p *Pickup) CancelOrder(ctx context.Context, event entities.OrderStatusEvent) (*entities.Order, error) {
	if !isValidID(event.OrderID) {
		return nil, ErrInvalidOrderID
	}

	var canceled *entities.Order
	err := p.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := p.repository.GetByID(ctx, event.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if order.IsDelivered() {
			return ErrOrderAlreadyDelivered
		}
		if order.IsCanceled() {
			canceled = order
			return nil
		}

		canceled, err = p.repository.SetCanceledAt(ctx, event.OrderID, p.occurredAt(event))
		if err != nil {
			return fmt.Errorf("set canceled at: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return canceled, nil
}

// CompleteOrder фиксирует доставку, о которой сообщил dispatch-процесс.
func (p *Pickup) CompleteOrder(ctx context.Context, event entities.OrderStatusEvent) (*entities.Order, error) {
	if !isValidID(event.OrderID) {
		return nil, ErrInvalidOrderID
	}

	var completed *entities.Order
	err := p.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := p.repository.GetByID(ctx, event.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		switch {
		case order.IsCanceled():
			return ErrOrderCanceled
		case !order.IsPickedUp():
			return ErrOrderNotPickedUp
		case order.IsDelivered():
			completed = order
			return nil
		}

		completed, err = p.repository.SetEndDate(ctx, event.OrderID, p.occurredAt(event), nil)
		if err != nil {
			return fmt.Errorf("set end date: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return completed, nil
}

// CountTodayPickups считает неотмененные заборы за текущие сутки по всем курьерам.
func (p *Pickup) CountTodayPickups(ctx context.Context) (int64, error) {
	window := p.windowFactory.CalculateWindow(p.windowFactory.Now())

	count, err := p.repository.CountAllPickupsBetween(ctx, window.DayStart, window.DayEnd)
	if err != nil {
		return 0, fmt.Errorf("count today pickups: %w", err)
	}
	return count, nil
}

func (p *Pickup) occurredAt(event entities.OrderStatusEvent) time.Time {
	if event.OccurredAt.IsZero() {
		return p.windowFactory.Now()
	}
	return event.OccurredAt
}
