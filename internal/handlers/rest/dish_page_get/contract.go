//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dish_page_get_test
package dish_page_get

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
	Page(ctx context.Context, query entities.DishPageQuery) (*entities.DishPage, error)
}
