package order

import (
	"takeout/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:           o.ID,
		Number:       o.Number,
		UserID:       o.UserID,
		Status:       entities.OrderStatusType(o.Status),
		Amount:       o.Amount,
		PlacedAt:     o.OrderTime,
		CheckoutTime: o.CheckoutTime,
		CancelReason: o.CancelReason,
		CancelTime:   o.CancelTime,
	}
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}
