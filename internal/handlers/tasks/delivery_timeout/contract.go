//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_timeout_test
package delivery_timeout

import (
	"context"

	"takeout/internal/entities"
	"takeout/pkg/logger"
)

type Service interface {
	CancelStaleDeliveries(ctx context.Context) (entities.SweepReport, error)
}

type taskLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
