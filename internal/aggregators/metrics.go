package aggregators

import (
	"access-log-stats/internal/shared/metrics"
)

var (
	metricRecordsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "records_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricBytesTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "bytes_total",
		},
	)
)
