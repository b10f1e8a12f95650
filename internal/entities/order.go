package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID           int64
	Number       string
	UserID       int64
	Status       OrderStatusType
	Amount       decimal.Decimal
	PlacedAt     time.Time
	CheckoutTime *time.Time
	CancelReason *string
	CancelTime   *time.Time
}

type OrderStatusType string

const (
	OrderPendingPayment     OrderStatusType = "pending_payment"
	OrderToBeConfirmed      OrderStatusType = "to_be_confirmed"
	OrderConfirmed          OrderStatusType = "confirmed"
	OrderDeliveryInProgress OrderStatusType = "delivery_in_progress"
	OrderCompleted          OrderStatusType = "completed"
	OrderCancelled          OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) Valid() bool {
	switch s {
	case OrderPendingPayment, OrderToBeConfirmed, OrderConfirmed,
		OrderDeliveryInProgress, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// Cancelled возвращает копию заказа в статусе cancelled с причиной и временем отмены.
func (o Order) Cancelled(reason string, at time.Time) Order {
	o.Status = OrderCancelled
	o.CancelReason = &reason
	o.CancelTime = &at
	return o
}

// Paid возвращает копию заказа, ожидающую подтверждения ресторана.
func (o Order) Paid(at time.Time) Order {
	o.Status = OrderToBeConfirmed
	o.CheckoutTime = &at
	return o
}

// Consistent проверяет, что причина и время отмены заданы тогда и только тогда,
// когда заказ отменен.
func (o Order) Consistent() bool {
	cancelled := o.Status == OrderCancelled
	return cancelled == (o.CancelReason != nil) && cancelled == (o.CancelTime != nil)
}
