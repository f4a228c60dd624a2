package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	orderservice "logistics/internal/service/order"
	"logistics/internal/service/pickup"
	"logistics/pkg/logger"
)

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		orderService:             orderService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.status.changed: claim closed, exiting ConsumeClaim")
				return nil
			}

			if stop := h.messageProcessing(sess, message); stop {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("order.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если обработку нужно прервать без коммита оффсета.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order.status.changed: bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	order, err := h.orderService.ProcessOrderStatusChange(ctx, event.toEntity())
	if err != nil {
		errLog := msgLog.With(logger.NewField("error", err))

		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			errLog.Warn("order.status.changed: context done, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrInvalidEvent),
			errors.Is(err, orderservice.ErrUndefinedStatus):
			errLog.Warn("order.status.changed: event skipped")

		case errors.Is(err, pickup.ErrOrderNotFound),
			errors.Is(err, pickup.ErrOrderAlreadyDelivered),
			errors.Is(err, pickup.ErrOrderCanceled),
			errors.Is(err, pickup.ErrOrderNotPickedUp):
			errLog.Warn("order.status.changed: order state does not allow transition")

		default:
			errLog.Error("order.status.changed: failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	h.log.With(
		logger.NewField("order", order.ID),
		logger.NewField("event_status", event.Status),
		logger.NewField("canceled", order.IsCanceled()),
		logger.NewField("delivered", order.IsDelivered()),
		logger.NewField("offset", message.Offset),
	).Info("order.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
