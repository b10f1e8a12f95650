//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dish_test
package dish

import (
	"context"

	"takeout/internal/entities"
	"takeout/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, dish entities.Dish) (*entities.Dish, error)
	GetByID(ctx context.Context, dishID int64) (*entities.Dish, error)
	Page(ctx context.Context, query entities.DishPageQuery) (*entities.DishPage, error)
	Update(ctx context.Context, dish entities.Dish) error
	UpdateStatus(ctx context.Context, dishID int64, status entities.DishStatus, updatedBy int64) error
	DeleteByIDs(ctx context.Context, dishIDs []int64) error
	ListByCategory(ctx context.Context, categoryID int64, status entities.DishStatus) ([]entities.Dish, error)
	CountOnSale(ctx context.Context, dishIDs []int64) (int64, error)

	InsertFlavors(ctx context.Context, dishID int64, flavors []entities.DishFlavor) error
	DeleteFlavors(ctx context.Context, dishIDs []int64) error
	ListFlavors(ctx context.Context, dishIDs []int64) (map[int64][]entities.DishFlavor, error)
}

type SetmealRelations interface {
	SetmealIDsByDishIDs(ctx context.Context, dishIDs []int64) ([]int64, error)
}

type Cache interface {
	GetDishes(ctx context.Context, key string) ([]entities.Dish, bool, error)
	SetDishes(ctx context.Context, key string, dishes []entities.Dish) error
	Invalidate(ctx context.Context, key string) error
	InvalidatePrefix(ctx context.Context, prefix string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
