package delivery_timeout

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"takeout/internal/pkg/metrics"
	"takeout/pkg/logger"
)

const rule = "delivery_timeout"

// DeliveryTimeout раз в сутки отменяет зависшие доставки.
type DeliveryTimeout struct {
	service  Service
	log      taskLogger
	schedule cron.Schedule
	timeout  time.Duration
}

func New(log taskLogger, service Service, schedule cron.Schedule, timeout time.Duration) *DeliveryTimeout {
	return &DeliveryTimeout{
		service:  service,
		log:      log.With(logger.NewField("task", rule)),
		schedule: schedule,
		timeout:  timeout,
	}
}

func (d *DeliveryTimeout) Schedule() cron.Schedule {
	return d.schedule
}

func (d *DeliveryTimeout) Do(ctx context.Context) error {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	start := time.Now()
	report, err := d.service.CancelStaleDeliveries(ctx)
	metrics.ObserveSweep(rule, report, err, time.Since(start))
	if err != nil {
		return fmt.Errorf("cancel stale deliveries: %w", err)
	}

	for _, failure := range report.Failures {
		d.log.Error("failed to cancel stale delivery",
			logger.NewField("order", failure.OrderID),
			logger.NewField("error", failure.Err),
		)
	}

	d.log.Info("delivery timeout sweep finished",
		logger.NewField("selected", report.Selected),
		logger.NewField("cancelled", report.Transitioned),
		logger.NewField("conflicts", report.Conflicts),
		logger.NewField("failed", report.Failed()),
	)
	return nil
}

func (d *DeliveryTimeout) Info() string {
	return "delivery timeout sweep"
}
