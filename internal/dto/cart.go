package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"takeout/internal/entities"
)

// ShoppingCartItem - тело запросов /user/shoppingCart/add и /sub.
type ShoppingCartItem struct {
	DishID     *int64  `json:"dishId,omitempty"`
	SetmealID  *int64  `json:"setmealId,omitempty"`
	DishFlavor *string `json:"dishFlavor,omitempty"`
}

func (i ShoppingCartItem) ToDomain() entities.CartItemRequest {
	return entities.CartItemRequest{
		DishID:     i.DishID,
		SetmealID:  i.SetmealID,
		DishFlavor: i.DishFlavor,
	}
}

type ShoppingCartLine struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"userId"`
	DishID     *int64          `json:"dishId,omitempty"`
	SetmealID  *int64          `json:"setmealId,omitempty"`
	DishFlavor *string         `json:"dishFlavor,omitempty"`
	Name       string          `json:"name"`
	Image      string          `json:"image"`
	Amount     decimal.Decimal `json:"amount"`
	Number     int             `json:"number"`
	CreateTime time.Time       `json:"createTime"`
}

func CartLineFromDomain(l entities.CartLine) ShoppingCartLine {
	return ShoppingCartLine{
		ID:         l.ID,
		UserID:     l.UserID,
		DishID:     l.DishID,
		SetmealID:  l.SetmealID,
		DishFlavor: l.DishFlavor,
		Name:       l.Name,
		Image:      l.Image,
		Amount:     l.Amount,
		Number:     l.Number,
		CreateTime: l.CreatedAt,
	}
}

func CartLinesFromDomain(lines []entities.CartLine) []ShoppingCartLine {
	result := make([]ShoppingCartLine, len(lines))
	for i, l := range lines {
		result[i] = CartLineFromDomain(l)
	}
	return result
}
