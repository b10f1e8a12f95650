//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dish_delete_test
package dish_delete

import (
	"context"

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
	Delete(ctx context.Context, dishIDs []int64) error
}
