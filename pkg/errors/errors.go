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

	// Path resolution errors
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrNotADirectory ErrorCode = "NOT_A_DIRECTORY"
	ErrIsADirectory  ErrorCode = "IS_A_DIRECTORY"

	// Tree mutation errors
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"
	ErrRootForbidden ErrorCode = "ROOT_FORBIDDEN"
	ErrDirectoryBusy ErrorCode = "DIRECTORY_BUSY"

	// Command errors
	ErrUsage          ErrorCode = "USAGE"
	ErrUnknownCommand ErrorCode = "UNKNOWN_COMMAND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// ShellError represents a structured error with code and details
type ShellError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ShellError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ShellError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ShellError) Is(target error) bool {
	var targetErr *ShellError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ShellError with the given code and message
func New(code ErrorCode, message string) *ShellError {
	return &ShellError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ShellError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ShellError {
	return &ShellError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ShellError
func Wrap(err error, code ErrorCode, message string) *ShellError {
	if err == nil {
		return nil
	}
	return &ShellError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ShellError {
	if err == nil {
		return nil
	}
	return &ShellError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ShellError) WithDetail(key string, value interface{}) *ShellError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ShellError) WithDetails(details map[string]interface{}) *ShellError {
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
	var shellErr *ShellError
	if errors.As(err, &shellErr) {
		return shellErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ShellError
func GetErrorCode(err error) ErrorCode {
	var shellErr *ShellError
	if errors.As(err, &shellErr) {
		return shellErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ShellError
func GetErrorDetails(err error) map[string]interface{} {
	var shellErr *ShellError
	if errors.As(err, &shellErr) {
		return shellErr.Details
	}
	return nil
}
