package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"takeout/internal/entities"
)

var (
	OrderSweepRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_sweep_runs_total",
			Help: "Order sweeper runs by rule and result",
		},
		[]string{"rule", "result"},
	)

	OrderSweepTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_sweep_transitions_total",
			Help: "Orders processed by the sweeper by rule and outcome",
		},
		[]string{"rule", "outcome"},
	)

	OrderSweepDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_sweep_duration_seconds",
			Help:    "Duration of a single sweeper run",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"rule"},
	)
)

// ObserveSweep записывает итог одного прохода правила.
func ObserveSweep(rule string, report entities.SweepReport, err error, duration time.Duration) {
	OrderSweepDuration.WithLabelValues(rule).Observe(duration.Seconds())

	if err != nil {
		OrderSweepRunsTotal.WithLabelValues(rule, "error").Inc()
		return
	}

	result := "ok"
	if report.Failed() > 0 {
		result = "partial"
	}
	OrderSweepRunsTotal.WithLabelValues(rule, result).Inc()

	OrderSweepTransitionsTotal.WithLabelValues(rule, "cancelled").Add(float64(report.Transitioned))
	OrderSweepTransitionsTotal.WithLabelValues(rule, "conflict").Add(float64(report.Conflicts))
	OrderSweepTransitionsTotal.WithLabelValues(rule, "failed").Add(float64(report.Failed()))
}
