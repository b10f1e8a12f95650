//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_paid_test
package order_paid

import (
	"context"
	"time"

	"takeout/internal/entities"
	"takeout/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ConfirmPayment(ctx context.Context, orderID int64, paidAt time.Time) (*entities.Order, error)
}
