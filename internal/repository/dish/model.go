package dish

import (
	"time"

	"github.com/shopspring/decimal"
)

type DishDB struct {
	ID           int64
	Name         string
	CategoryID   int64
	CategoryName *string
	Price        decimal.Decimal
	Image        string
	Description  string
	Status       int16
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CreatedBy    int64
	UpdatedBy    int64
}

type DishFlavorDB struct {
	ID     int64
	DishID int64
	Name   string
	Value  string
}
