package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes, grouped by where the error is raised
const (
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Usage errors: raised before any filesystem action
	ErrMissingOperand       ErrorCode = "MISSING_OPERAND"
	ErrMissingDestination   ErrorCode = "MISSING_DESTINATION_OPERAND"
	ErrExtraOperand         ErrorCode = "EXTRA_OPERAND"
	ErrInvalidBackupControl ErrorCode = "INVALID_BACKUP_CONTROL"
	ErrInvalidOutputFormat  ErrorCode = "INVALID_OUTPUT_FORMAT"
	ErrConflictingFlags     ErrorCode = "CONFLICTING_FLAGS"

	// Resolution errors: the invocation form could not be reduced to pairs
	ErrNotADirectory ErrorCode = "NOT_A_DIRECTORY"

	// Transaction errors: the filesystem rejected a step for one pair
	ErrRemoveFailed ErrorCode = "REMOVE_FAILED"
	ErrBackupFailed ErrorCode = "BACKUP_FAILED"
	ErrLinkFailed   ErrorCode = "LINK_FAILED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// Category groups error codes by the phase that raises them. The category
// decides whether a failure aborts the whole run (usage, resolution) or
// only the pair it belongs to (transaction).
type Category string

const (
	CategoryUsage       Category = "usage"
	CategoryResolution  Category = "resolution"
	CategoryTransaction Category = "transaction"
	CategoryOther       Category = "other"
)

// CategoryOf returns the category for a code.
func CategoryOf(code ErrorCode) Category {
	switch code {
	case ErrMissingOperand, ErrMissingDestination, ErrExtraOperand,
		ErrInvalidBackupControl, ErrInvalidOutputFormat, ErrConflictingFlags:
		return CategoryUsage
	case ErrNotADirectory:
		return CategoryResolution
	case ErrRemoveFailed, ErrBackupFailed, ErrLinkFailed:
		return CategoryTransaction
	default:
		return CategoryOther
	}
}

// LnkError represents a structured error with code and details
type LnkError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LnkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	return e.Message
}

// Unwrap implements the errors.Unwrap interface
func (e *LnkError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *LnkError) Is(target error) bool {
	var targetErr *LnkError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LnkError with the given code and message
func New(code ErrorCode, message string) *LnkError {
	return &LnkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LnkError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LnkError {
	return &LnkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a LnkError
func Wrap(err error, code ErrorCode, message string) *LnkError {
	if err == nil {
		return nil
	}
	return &LnkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LnkError {
	if err == nil {
		return nil
	}
	return &LnkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LnkError) WithDetail(key string, value interface{}) *LnkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var lnkErr *LnkError
	if errors.As(err, &lnkErr) {
		return lnkErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LnkError
func GetErrorCode(err error) ErrorCode {
	var lnkErr *LnkError
	if errors.As(err, &lnkErr) {
		return lnkErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a LnkError
func GetErrorDetails(err error) map[string]interface{} {
	var lnkErr *LnkError
	if errors.As(err, &lnkErr) {
		return lnkErr.Details
	}
	return nil
}
