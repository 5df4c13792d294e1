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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Rule errors
	ErrRulesNotFound ErrorCode = "RULES_NOT_FOUND"

	// Content list errors
	ErrContentRead ErrorCode = "CONTENT_READ"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"

	// Output errors
	ErrOutputFormat ErrorCode = "OUTPUT_FORMAT"
)

// LoadOrderError is a coded error. Commands and tests branch on Code;
// Details carries context such as the offending path.
type LoadOrderError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LoadOrderError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LoadOrderError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *LoadOrderError) Is(target error) bool {
	var targetErr *LoadOrderError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LoadOrderError with the given code and message
func New(code ErrorCode, message string) *LoadOrderError {
	return &LoadOrderError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LoadOrderError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LoadOrderError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap attaches a code and message to err. A nil err stays nil, so only
// call it on a non-nil error when returning through the error interface.
func Wrap(err error, code ErrorCode, message string) *LoadOrderError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LoadOrderError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *LoadOrderError) WithDetail(key string, value interface{}) *LoadOrderError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var loErr *LoadOrderError
	if errors.As(err, &loErr) {
		return loErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LoadOrderError
func GetErrorCode(err error) ErrorCode {
	var loErr *LoadOrderError
	if errors.As(err, &loErr) {
		return loErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a LoadOrderError
func GetErrorDetails(err error) map[string]interface{} {
	var loErr *LoadOrderError
	if errors.As(err, &loErr) {
		return loErr.Details
	}
	return nil
}
