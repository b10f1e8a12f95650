package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Dish struct {
	ID           int64
	Name         string
	CategoryID   int64
	CategoryName string
	Price        decimal.Decimal
	Image        string
	Description  string
	Status       DishStatus
	Flavors      []DishFlavor
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CreatedBy    int64
	UpdatedBy    int64
}

type DishFlavor struct {
	ID     int64
	DishID int64
	Name   string
	Value  string
}

type DishStatus int

const (
	DishDisabled DishStatus = 0
	DishEnabled  DishStatus = 1
)

func (s DishStatus) Valid() bool {
	return s == DishDisabled || s == DishEnabled
}

type DishPageQuery struct {
	Page       uint64
	PageSize   uint64
	Name       *string
	CategoryID *int64
	Status     *DishStatus
}

type DishPage struct {
	Total   int64
	Records []Dish
}
