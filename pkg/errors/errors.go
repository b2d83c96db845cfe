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
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"

	// Color data errors
	ErrMalformedNumber ErrorCode = "MALFORMED_NUMBER"
	ErrUnknownFormat   ErrorCode = "UNKNOWN_FORMAT"
)

// ColorMapError represents a structured error with code and details
type ColorMapError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ColorMapError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ColorMapError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a ColorMapError with the same code
func (e *ColorMapError) Is(target error) bool {
	var targetErr *ColorMapError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ColorMapError with the given code and message
func New(code ErrorCode, message string) *ColorMapError {
	return &ColorMapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ColorMapError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ColorMapError {
	return &ColorMapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ColorMapError.
// A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *ColorMapError {
	if err == nil {
		return nil
	}
	return &ColorMapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ColorMapError {
	if err == nil {
		return nil
	}
	return &ColorMapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ColorMapError) WithDetail(key string, value interface{}) *ColorMapError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ColorMapError) WithDetails(details map[string]interface{}) *ColorMapError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var cmErr *ColorMapError
	if errors.As(err, &cmErr) {
		return cmErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ColorMapError
func GetErrorCode(err error) ErrorCode {
	var cmErr *ColorMapError
	if errors.As(err, &cmErr) {
		return cmErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ColorMapError
func GetErrorDetails(err error) map[string]interface{} {
	var cmErr *ColorMapError
	if errors.As(err, &cmErr) {
		return cmErr.Details
	}
	return nil
}
