package parsers

import (
	"fmt"

	"access-log-stats/internal/shared/svcerrors"
)

// LineParser errors
const (
	codeInputNotFound   = "PARSE_9000"
	codeInputOpenFailed = "PARSE_9001"
	codeInputReadFailed = "PARSE_9002"
)

// errInputNotFound returns an error when the access log does not exist.
func errInputNotFound(key string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewIOError(codeInputNotFound, fmt.Sprintf("access log %q not found", key), cause)
}

// errInputOpenFailed returns an error when the access log cannot be opened.
func errInputOpenFailed(key string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewIOError(codeInputOpenFailed, fmt.Sprintf("failed to open access log %q", key), cause)
}

// errInputReadFailed returns an error when reading the access log stops mid-way.
func errInputReadFailed(lineNumber int64, cause error) *svcerrors.ServiceError {
	return svcerrors.NewIOError(codeInputReadFailed, fmt.Sprintf("failed to read access log at line %d", lineNumber), cause)
}
