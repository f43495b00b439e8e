package aggregators

import (
	"fmt"

	"access-log-stats/internal/shared/svcerrors"
)

// Aggregator errors
const (
	codeInvalidBytes       = "AGG_1000"
	codeTotalBytesOverflow = "AGG_1001"
)

// errInvalidBytes returns an error when a bytes field is not a base-10 integer.
func errInvalidBytes(value string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewDataError(codeInvalidBytes, fmt.Sprintf("bytes field %q is not a valid integer", value), cause)
}

// errTotalBytesOverflow returns an error when the byte total no longer fits in an int64.
func errTotalBytesOverflow(total, n int64) *svcerrors.ServiceError {
	return svcerrors.NewDataError(codeTotalBytesOverflow, fmt.Sprintf("adding %d bytes to total %d overflows", n, total), nil)
}

// errCancelled returns an error when the run is cancelled mid-stream.
func errCancelled(linesRead int64, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalErrorUndefined(fmt.Errorf("aggregation cancelled after %d lines: %w", linesRead, cause))
}
