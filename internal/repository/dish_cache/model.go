package dish_cache

import (
	"time"

	"github.com/shopspring/decimal"
)

// DishCached - JSON-представление блюда в кэше.
type DishCached struct {
	ID           int64              `json:"id"`
	Name         string             `json:"name"`
	CategoryID   int64              `json:"categoryId"`
	CategoryName string             `json:"categoryName,omitempty"`
	Price        decimal.Decimal    `json:"price"`
	Image        string             `json:"image"`
	Description  string             `json:"description"`
	Status       int                `json:"status"`
	Flavors      []DishFlavorCached `json:"flavors,omitempty"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

type DishFlavorCached struct {
	ID     int64  `json:"id"`
	DishID int64  `json:"dishId"`
	Name   string `json:"name"`
	Value  string `json:"value"`
}
