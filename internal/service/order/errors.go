package order

import "errors"

var (
	ErrInvalidOrderID = errors.New("invalid order id")

	ErrOrderNotFound  = errors.New("order not found")
	ErrStatusMismatch = errors.New("order status changed concurrently")
	ErrRepository     = errors.New("order repository error")
)
