package order

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"takeout/internal/entities"
)

const (
	PaymentTimeoutReason  = "payment timeout, auto-cancelled"
	DeliveryTimeoutReason = "delivery timeout, auto-cancelled"
)

type Config struct {
	PaymentTimeout  time.Duration
	DeliveryTimeout time.Duration
	// Concurrency - сколько заказов обновляется параллельно в рамках одного прохода.
	Concurrency int
}

type Service struct {
	repository Repository
	cfg        Config
	now        func() time.Time
}

type Option func(*Service)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(repository Repository, cfg Config, opts ...Option) *Service {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	s := &Service{
		repository: repository,
		cfg:        cfg,
		now:        func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type sweepRule struct {
	from   entities.OrderStatusType
	maxAge time.Duration
	reason string
}

// CancelPaymentTimeouts отменяет заказы, не оплаченные дольше PaymentTimeout.
func (s *Service) CancelPaymentTimeouts(ctx context.Context) (entities.SweepReport, error) {
	return s.sweep(ctx, sweepRule{
		from:   entities.OrderPendingPayment,
		maxAge: s.cfg.PaymentTimeout,
		reason: PaymentTimeoutReason,
	})
}

// CancelStaleDeliveries отменяет заказы, находящиеся в доставке дольше DeliveryTimeout.
func (s *Service) CancelStaleDeliveries(ctx context.Context) (entities.SweepReport, error) {
	return s.sweep(ctx, sweepRule{
		from:   entities.OrderDeliveryInProgress,
		maxAge: s.cfg.DeliveryTimeout,
		reason: DeliveryTimeoutReason,
	})
}

func (s *Service) sweep(ctx context.Context, rule sweepRule) (entities.SweepReport, error) {
	report := entities.SweepReport{}

	now := s.now()
	orders, err := s.repository.FindByStatusAndPlacedAtBefore(ctx, rule.from, now.Add(-rule.maxAge))
	if err != nil {
		return report, fmt.Errorf("select %s orders: %w", rule.from, err)
	}

	report.Selected = len(orders)
	if len(orders) == 0 {
		return report, nil
	}

	var mu sync.Mutex
	group := errgroup.Group{}
	group.SetLimit(s.cfg.Concurrency)

	for _, order := range orders {
		group.Go(func() error {
			err := ctx.Err()
			if err == nil {
				// обновление пройдет только если статус не изменился с момента выборки
				err = s.repository.Update(ctx, order.Cancelled(rule.reason, now), rule.from)
			}

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				report.Transitioned++
			case errors.Is(err, ErrStatusMismatch):
				report.Conflicts++
			default:
				report.Failures = append(report.Failures, entities.SweepFailure{OrderID: order.ID, Err: err})
			}
			return nil
		})
	}
	_ = group.Wait()

	sort.Slice(report.Failures, func(i, j int) bool {
		return report.Failures[i].OrderID < report.Failures[j].OrderID
	})
	return report, nil
}

// ConfirmPayment переводит заказ из ожидания оплаты в ожидание подтверждения.
// Повторное событие для уже оплаченного заказа не считается ошибкой.
func (s *Service) ConfirmPayment(ctx context.Context, orderID int64, paidAt time.Time) (*entities.Order, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if paidAt.IsZero() {
		paidAt = s.now()
	}

	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	switch order.Status {
	case entities.OrderPendingPayment:
	case entities.OrderToBeConfirmed:
		return order, nil
	default:
		return nil, fmt.Errorf("order %d is %s: %w", orderID, order.Status, ErrStatusMismatch)
	}

	paid := order.Paid(paidAt.UTC())
	if err := s.repository.Update(ctx, paid, entities.OrderPendingPayment); err != nil {
		return nil, fmt.Errorf("confirm payment: %w", err)
	}
	return &paid, nil
}
