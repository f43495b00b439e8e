package reporters

import (
	"access-log-stats/internal/shared/metrics"
)

var (
	metricReportsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReporter,
			Name:      "reports_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
