package app

import (
	"access-log-stats/internal/shared/svcerrors"
)

const (
	codeInvalidConfig = "CFG_1000"
)

// errInvalidConfig returns an error when a configured value cannot be used.
func errInvalidConfig(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidConfig, msg, cause)
}
