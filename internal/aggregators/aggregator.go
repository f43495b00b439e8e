package aggregators

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"access-log-stats/internal/models"
	"access-log-stats/internal/parsers"
	"access-log-stats/internal/shared/loggers"
	"access-log-stats/internal/shared/metrics"
)

type Aggregator interface {
	// Add applies one record to state. On error state is left untouched.
	Add(state *models.AggregateState, record *models.LogRecord) error
	// Aggregate drains seq, in order, into a new state.
	Aggregate(ctx context.Context, seq parsers.RecordSequence) (*models.AggregateState, error)
}

type aggregator struct{}

func NewAggregator() Aggregator {
	return &aggregator{}
}

func (a *aggregator) Add(state *models.AggregateState, record *models.LogRecord) error {
	// Convert bytes before touching any counter
	var bytes int64
	if record.HasBytes() {
		n, err := strconv.ParseInt(record.Bytes, 10, 64)
		if err != nil {
			svcErr := errInvalidBytes(record.Bytes, err)
			metricRecordsTotal.WithLabelValues(svcErr.Code).Inc()
			return svcErr
		}
		if n > math.MaxInt64-state.TotalBytes {
			svcErr := errTotalBytesOverflow(state.TotalBytes, n)
			metricRecordsTotal.WithLabelValues(svcErr.Code).Inc()
			return svcErr
		}
		bytes = n
	}

	state.TotalRequests++
	state.TotalBytes += bytes
	state.RequestsByResource.Inc(record.Resource)
	state.RequestsByClient.Inc(record.ClientIP)
	state.RequestsByStatusClass.Inc(record.StatusClass())

	metricRecordsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricBytesTotal.Add(float64(bytes))
	return nil
}

func (a *aggregator) Aggregate(ctx context.Context, seq parsers.RecordSequence) (*models.AggregateState, error) {
	logger := loggers.Ctx(ctx)
	state := models.NewAggregateState()

	for seq.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, errCancelled(seq.LinesRead(), err)
		}
		if err := a.Add(state, seq.Record()); err != nil {
			return nil, fmt.Errorf("line %d: %w", seq.LinesRead(), err)
		}
	}
	if err := seq.Err(); err != nil {
		return nil, err
	}

	logger.Info().
		Int64(loggers.FieldLinesRead, seq.LinesRead()).
		Int64(loggers.FieldLinesSkipped, seq.Skipped()).
		Int64(loggers.FieldRecords, state.TotalRequests).
		Int64(loggers.FieldTotalBytes, state.TotalBytes).
		Msg("aggregation completed")

	return state, nil
}
