package order_paid

import (
	"errors"
	"time"
)

var errInvalidEvent = errors.New("order_id and paid_at are required")

type paidEvent struct {
	OrderID int64     `json:"order_id"`
	PaidAt  time.Time `json:"paid_at"`
}

func (e paidEvent) validate() error {
	if e.OrderID <= 0 || e.PaidAt.IsZero() {
		return errInvalidEvent
	}
	return nil
}
