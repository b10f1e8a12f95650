package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDB struct {
	ID           int64
	Number       string
	UserID       int64
	Status       string
	Amount       decimal.Decimal
	OrderTime    time.Time
	CheckoutTime *time.Time
	CancelReason *string
	CancelTime   *time.Time
}
