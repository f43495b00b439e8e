package svcerrors

import (
	"errors"
	"fmt"
)

const (
	categoryInvalidArgument = "invalid_argument"
	categoryIO              = "io"
	categoryData            = "data"
	categoryInternal        = "internal"
)

const (
	errorCodeInternalUndefined = "SYS_9001"
)

// Process exit statuses. Anything that is not a success exits non-zero.
const (
	ExitOK              = 0
	ExitInternal        = 1
	ExitInvalidArgument = 2
	ExitIO              = 3
	ExitData            = 4
)

// NewInvalidArgumentError creates a new ServiceError with category invalid_argument.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInvalidArgument,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: ExitInvalidArgument,
	}
}

// NewIOError creates a new ServiceError with category io.
func NewIOError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryIO,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: ExitIO,
	}
}

// NewDataError creates a new ServiceError with category data.
func NewDataError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryData,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: ExitData,
	}
}

// NewInternalError creates a new ServiceError with category internal.
func NewInternalError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInternal,
		Code:     code,
		Message:  "internal error",
		Cause:    cause,
		ExitCode: ExitInternal,
	}
}

// NewInternalErrorUndefined creates a new ServiceError with category internal and code SYS_9001.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

// ServiceError represents a service-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category string // invalid_argument, io, data or internal
	Code     string // stage-owned stable code (e.g. RPT_1000)
	Message  string // human-readable
	Cause    error  // wrapped underlying error
	ExitCode int    // process exit status
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// As extracts a ServiceError from the error chain.
// It returns (*ServiceError, true) if err wraps a ServiceError, otherwise (nil, false).
func As(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// ExitCodeOf returns the exit status a process should finish with for err.
func ExitCodeOf(err error) int {
	if err == nil {
		return ExitOK
	}
	if svcErr, ok := As(err); ok {
		return svcErr.ExitCode
	}
	return ExitInternal
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}
