package order_paid

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	orderservice "takeout/internal/service/order"
	"takeout/pkg/logger"
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
				h.log.Info("order.paid: claim messages closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// сессия закрыта (rebalance или остановка consumer group)
			h.log.Info("order.paid: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение.
// Возвращает true, если ConsumeClaim нужно прервать без коммита сообщения.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event paidEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order.paid handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}
	if err := event.validate(); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order.paid handler received incomplete message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("paid_at", event.PaidAt),
		logger.NewField("offset", message.Offset),
	)

	order, err := h.orderService.ConfirmPayment(ctx, event.OrderID, event.PaidAt)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.paid handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrRepository):
			msgLog.With(
				logger.NewField("error", err),
			).Error("order.paid handler repository failure, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrStatusMismatch):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.paid handler: order is no longer awaiting payment")

		case errors.Is(err, orderservice.ErrOrderNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.paid handler: order not found")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.paid handler failed to process order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("status", order.Status.String()),
	).Info("order.paid: processed")

	sess.MarkMessage(message, "")
	return false
}
