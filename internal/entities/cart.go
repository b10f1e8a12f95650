package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine - строка корзины. Ровно одно из DishID / SetmealID заполнено.
type CartLine struct {
	ID         int64
	UserID     int64
	DishID     *int64
	SetmealID  *int64
	DishFlavor *string
	Name       string
	Image      string
	Amount     decimal.Decimal
	Number     int
	CreatedAt  time.Time
}

// CartItemRequest описывает товар для добавления/удаления из корзины.
type CartItemRequest struct {
	DishID     *int64
	SetmealID  *int64
	DishFlavor *string
}

func (r CartItemRequest) IsDish() bool {
	return r.DishID != nil
}

// CatalogItem - текущие название, картинка и цена блюда или сета.
type CatalogItem struct {
	Name  string
	Image string
	Price decimal.Decimal
}
