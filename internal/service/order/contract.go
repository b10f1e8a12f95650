//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"takeout/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, orderID int64) (*entities.Order, error)
	FindByStatusAndPlacedAtBefore(ctx context.Context, status entities.OrderStatusType, cutoff time.Time) ([]entities.Order, error)
	Update(ctx context.Context, order entities.Order, expected entities.OrderStatusType) error
}
