package types

import "fmt"

// ErrorCode represents a unified error code across the library.
type ErrorCode string

// Structural error codes raised during graph construction and validation.
const (
	ErrInvalidGraph       ErrorCode = "INVALID_GRAPH"
	ErrEmptyGraph         ErrorCode = "EMPTY_GRAPH"
	ErrDuplicateNode      ErrorCode = "DUPLICATE_NODE"
	ErrDanglingConnection ErrorCode = "DANGLING_CONNECTION"
	ErrAgentRefMissing    ErrorCode = "AGENT_REF_MISSING"
	ErrDuplicateVariable  ErrorCode = "DUPLICATE_VARIABLE"
	ErrInvalidTrigger     ErrorCode = "INVALID_TRIGGER"
	ErrInvalidCron        ErrorCode = "INVALID_CRON"
)

// Policy and analysis error codes.
const (
	ErrCycleDetected ErrorCode = "CYCLE_DETECTED"
)

// Agent schema error codes.
const (
	ErrInvalidAgent    ErrorCode = "INVALID_AGENT"
	ErrInvalidSchema   ErrorCode = "INVALID_SCHEMA"
	ErrUnknownProvider ErrorCode = "UNKNOWN_PROVIDER"
)

// Translation and infrastructure error codes.
const (
	ErrUnsupportedTarget ErrorCode = "UNSUPPORTED_TARGET"
	ErrTranslation       ErrorCode = "TRANSLATION_FAILED"
	ErrSerialization     ErrorCode = "SERIALIZATION_FAILED"
	ErrNotFound          ErrorCode = "NOT_FOUND"
	ErrStorage           ErrorCode = "STORAGE_FAILED"
)

// Error represents a structured error with code, message, and an optional cause.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Target  string    `json:"target,omitempty"`
	Cause   error     `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new Error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithCause adds a cause to the error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithTarget tags the error with the translation target that produced it.
func (e *Error) WithTarget(target string) *Error {
	e.Target = target
	return e
}

// WrapError wraps an arbitrary error under a code, preserving the cause chain.
func WrapError(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) ErrorCode {
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return ""
}

// IsErrorCode reports whether err carries the given code.
func IsErrorCode(err error, code ErrorCode) bool {
	return GetErrorCode(err) == code
}
