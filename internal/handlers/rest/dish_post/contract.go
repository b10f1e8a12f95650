//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dish_post_test
package dish_post

import (
	"context"

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
	Create(ctx context.Context, employeeID int64, dish entities.Dish) (*entities.Dish, error)
}
