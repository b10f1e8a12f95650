package payment_timeout

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"takeout/internal/pkg/metrics"
	"takeout/pkg/logger"
)

const rule = "payment_timeout"

// PaymentTimeout отменяет заказы, не оплаченные за отведенное время.
type PaymentTimeout struct {
	service  Service
	log      taskLogger
	schedule cron.Schedule
	timeout  time.Duration
}

func New(log taskLogger, service Service, schedule cron.Schedule, timeout time.Duration) *PaymentTimeout {
	return &PaymentTimeout{
		service:  service,
		log:      log.With(logger.NewField("task", rule)),
		schedule: schedule,
		timeout:  timeout,
	}
}

func (p *PaymentTimeout) Schedule() cron.Schedule {
	return p.schedule
}

// RunOnStartup - после рестарта сразу добираем заказы, пропущенные за время простоя.
func (p *PaymentTimeout) RunOnStartup() bool {
	return true
}

func (p *PaymentTimeout) Do(ctx context.Context) error {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	start := time.Now()
	report, err := p.service.CancelPaymentTimeouts(ctx)
	metrics.ObserveSweep(rule, report, err, time.Since(start))
	if err != nil {
		return fmt.Errorf("cancel payment timeouts: %w", err)
	}

	for _, failure := range report.Failures {
		p.log.Error("failed to cancel unpaid order",
			logger.NewField("order", failure.OrderID),
			logger.NewField("error", failure.Err),
		)
	}

	if report.Selected > 0 {
		p.log.Info("payment timeout sweep finished",
			logger.NewField("selected", report.Selected),
			logger.NewField("cancelled", report.Transitioned),
			logger.NewField("conflicts", report.Conflicts),
			logger.NewField("failed", report.Failed()),
		)
	}
	return nil
}

func (p *PaymentTimeout) Info() string {
	return "payment timeout sweep"
}
