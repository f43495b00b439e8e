package reporters

import (
	"context"

	"access-log-stats/internal/models"
	"access-log-stats/internal/shared/loggers"
	"access-log-stats/internal/shared/metrics"
	"access-log-stats/internal/shared/svcerrors"
	"access-log-stats/internal/stores"
)

type ReportingService interface {
	// Report builds the summary of state and writes it to every configured destination.
	Report(ctx context.Context, state *models.AggregateState) (*models.SummaryReport, error)
}

type reportingService struct {
	summaryBuilder SummaryBuilder
	reportStore    stores.ReportStore
	summaryStore   stores.SummaryStore
}

// NewReportingService wires the builder and stores. summaryStore may be nil when
// no JSON snapshot is wanted.
func NewReportingService(summaryBuilder SummaryBuilder, reportStore stores.ReportStore, summaryStore stores.SummaryStore) ReportingService {
	return &reportingService{
		summaryBuilder: summaryBuilder,
		reportStore:    reportStore,
		summaryStore:   summaryStore,
	}
}

func (s *reportingService) Report(ctx context.Context, state *models.AggregateState) (*models.SummaryReport, error) {
	logger := loggers.Ctx(ctx)

	report, err := s.summaryBuilder.Build(state)
	if err != nil {
		return nil, s.fail(err)
	}

	if err := s.reportStore.Put(ctx, report); err != nil {
		return nil, s.fail(errReportWriteFailed(err))
	}

	if s.summaryStore != nil {
		s.logPreviousSummary(ctx, report)
		if err := s.summaryStore.Put(ctx, report); err != nil {
			return nil, s.fail(errSummaryWriteFailed(err))
		}
	}

	logger.Info().
		Int64(loggers.FieldRecords, report.TotalRequests).
		Int64(loggers.FieldTotalBytes, report.TotalBytes).
		Msgf("report written (top resource %s, top client %s)", report.TopResource.Value, report.TopClient.Value)

	metricReportsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return report, nil
}

// logPreviousSummary records how the snapshot about to be replaced compares to report.
// A missing or unreadable snapshot is not an error.
func (s *reportingService) logPreviousSummary(ctx context.Context, report *models.SummaryReport) {
	logger := loggers.Ctx(ctx)

	previous, err := s.summaryStore.Get(ctx)
	if err != nil {
		logger.Debug().Err(err).Msg("no previous summary to replace")
		return
	}

	logger.Info().
		Int64(loggers.FieldPreviousRecords, previous.TotalRequests).
		Int64(loggers.FieldRecords, report.TotalRequests).
		Msg("replacing previous summary")
}

func (s *reportingService) fail(err error) error {
	code := ""
	if svcErr, ok := svcerrors.As(err); ok {
		code = svcErr.Code
	}
	metricReportsTotal.WithLabelValues(code).Inc()
	return err
}
