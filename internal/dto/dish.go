package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"takeout/internal/entities"
)

type DishFlavor struct {
	ID     int64  `json:"id,omitempty"`
	DishID int64  `json:"dishId,omitempty"`
	Name   string `json:"name"`
	Value  string `json:"value"`
}

// Dish - тело POST/PUT /admin/dish. ID обязателен только при обновлении.
type Dish struct {
	ID          int64           `json:"id,omitempty"`
	Name        string          `json:"name"`
	CategoryID  int64           `json:"categoryId"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Status      *int            `json:"status,omitempty"`
	Flavors     []DishFlavor    `json:"flavors"`
}

func (d Dish) ToDomain() entities.Dish {
	// новое блюдо по умолчанию в продаже
	status := entities.DishEnabled
	if d.Status != nil {
		status = entities.DishStatus(*d.Status)
	}

	flavors := make([]entities.DishFlavor, len(d.Flavors))
	for i, f := range d.Flavors {
		flavors[i] = entities.DishFlavor{Name: f.Name, Value: f.Value}
	}

	return entities.Dish{
		ID:          d.ID,
		Name:        d.Name,
		CategoryID:  d.CategoryID,
		Price:       d.Price,
		Image:       d.Image,
		Description: d.Description,
		Status:      status,
		Flavors:     flavors,
	}
}

type DishView struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	CategoryID   int64           `json:"categoryId"`
	CategoryName string          `json:"categoryName,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Image        string          `json:"image"`
	Description  string          `json:"description"`
	Status       int             `json:"status"`
	Flavors      []DishFlavor    `json:"flavors"`
	UpdateTime   time.Time       `json:"updateTime"`
}

func DishFromDomain(d entities.Dish) DishView {
	flavors := make([]DishFlavor, len(d.Flavors))
	for i, f := range d.Flavors {
		flavors[i] = DishFlavor(f)
	}

	return DishView{
		ID:           d.ID,
		Name:         d.Name,
		CategoryID:   d.CategoryID,
		CategoryName: d.CategoryName,
		Price:        d.Price,
		Image:        d.Image,
		Description:  d.Description,
		Status:       int(d.Status),
		Flavors:      flavors,
		UpdateTime:   d.UpdatedAt,
	}
}

func DishesFromDomain(dishes []entities.Dish) []DishView {
	result := make([]DishView, len(dishes))
	for i, d := range dishes {
		result[i] = DishFromDomain(d)
	}
	return result
}

type DishPage struct {
	Total   int64      `json:"total"`
	Records []DishView `json:"records"`
}

func DishPageFromDomain(p entities.DishPage) DishPage {
	return DishPage{
		Total:   p.Total,
		Records: DishesFromDomain(p.Records),
	}
}

type IDResponse struct {
	ID int64 `json:"id"`
}
