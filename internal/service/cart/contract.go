//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cart_test
package cart

import (
	"context"

	"takeout/internal/entities"
)

type Repository interface {
	FindByIdentity(ctx context.Context, userID int64, item entities.CartItemRequest) (*entities.CartLine, error)
	Insert(ctx context.Context, line entities.CartLine) (*entities.CartLine, error)
	IncrementQuantity(ctx context.Context, lineID int64) (*entities.CartLine, error)
	UpdateQuantity(ctx context.Context, lineID int64, number int) error
	DeleteByID(ctx context.Context, lineID int64) error
	DeleteByOwner(ctx context.Context, userID int64) error
	ListByOwner(ctx context.Context, userID int64) ([]entities.CartLine, error)
}

type CatalogLookup interface {
	ResolveDish(ctx context.Context, dishID int64) (*entities.CatalogItem, error)
	ResolveSetmeal(ctx context.Context, setmealID int64) (*entities.CatalogItem, error)
}
