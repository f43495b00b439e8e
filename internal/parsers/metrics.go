package parsers

import (
	"access-log-stats/internal/shared/metrics"
)

var (
	metricLinesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubParser,
			Name:      "lines_total",
		},
		[]string{metrics.FieldResult},
	)
)
