//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cart_clean_delete_test
package cart_clean_delete

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
	Clear(ctx context.Context, userID int64) error
}
