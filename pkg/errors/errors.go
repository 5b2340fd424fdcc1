package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Rule registry errors
	ErrInvalidRule   ErrorCode = "INVALID_RULE"
	ErrRuleNotFound  ErrorCode = "RULE_NOT_FOUND"
	ErrRegistryRead  ErrorCode = "REGISTRY_READ"
	ErrRegistryWrite ErrorCode = "REGISTRY_WRITE"

	// Directory matching errors
	ErrMatcherFailure ErrorCode = "MATCHER_FAILURE"

	// Exclusion store errors
	ErrStoreUnreadable ErrorCode = "STORE_UNREADABLE"
	ErrStoreWrite      ErrorCode = "STORE_WRITE"
	ErrStoreConflict   ErrorCode = "STORE_CONFLICT"

	// Collaborator errors
	ErrServiceRestart       ErrorCode = "SERVICE_RESTART"
	ErrConfirmationRequired ErrorCode = "CONFIRMATION_REQUIRED"
)

// DetailHint is the detail key holding a user-facing remediation hint
const DetailHint = "hint"

// SpotlightError represents a structured error with code and details
type SpotlightError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SpotlightError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SpotlightError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SpotlightError) Is(target error) bool {
	var targetErr *SpotlightError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SpotlightError with the given code and message
func New(code ErrorCode, message string) *SpotlightError {
	return &SpotlightError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SpotlightError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SpotlightError {
	return &SpotlightError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SpotlightError
func Wrap(err error, code ErrorCode, message string) *SpotlightError {
	if err == nil {
		return nil
	}
	return &SpotlightError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SpotlightError {
	if err == nil {
		return nil
	}
	return &SpotlightError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SpotlightError) WithDetail(key string, value interface{}) *SpotlightError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *SpotlightError) WithDetails(details map[string]interface{}) *SpotlightError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithHint attaches a remediation hint shown to the user alongside the message
func (e *SpotlightError) WithHint(hint string) *SpotlightError {
	return e.WithDetail(DetailHint, hint)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var spotErr *SpotlightError
	if errors.As(err, &spotErr) {
		return spotErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SpotlightError
func GetErrorCode(err error) ErrorCode {
	var spotErr *SpotlightError
	if errors.As(err, &spotErr) {
		return spotErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SpotlightError
func GetErrorDetails(err error) map[string]interface{} {
	var spotErr *SpotlightError
	if errors.As(err, &spotErr) {
		return spotErr.Details
	}
	return nil
}

// Hint returns the first remediation hint found along the error chain
func Hint(err error) string {
	for err != nil {
		var spotErr *SpotlightError
		if !errors.As(err, &spotErr) {
			return ""
		}
		if hint, ok := spotErr.Details[DetailHint].(string); ok && hint != "" {
			return hint
		}
		err = spotErr.Wrapped
	}
	return ""
}
