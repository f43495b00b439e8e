package reporters

import (
	"errors"
	"fmt"

	"access-log-stats/internal/shared/svcerrors"
)

// ErrNoRecords is the cause of every report built from an empty aggregate.
var ErrNoRecords = errors.New("no records")

// ReportingService errors
const (
	codeNoRecords = "RPT_1000"

	codeReportWriteFailed  = "RPT_9000"
	codeSummaryWriteFailed = "RPT_9001"
)

// errNoRecords returns an error when the input held no Combined Log Format line.
func errNoRecords() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeNoRecords, "no data: input contains no Combined Log Format lines", ErrNoRecords)
}

// errReportWriteFailed returns an error when the text report cannot be written.
func errReportWriteFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewIOError(codeReportWriteFailed, "failed to write report", fmt.Errorf("reportStoreFailed: %w", cause))
}

// errSummaryWriteFailed returns an error when the JSON summary cannot be written.
func errSummaryWriteFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewIOError(codeSummaryWriteFailed, "failed to write summary", fmt.Errorf("summaryStoreFailed: %w", cause))
}
