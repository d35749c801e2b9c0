package xerrors

import (
	"fmt"
	"strings"
)

// Code represents a structured error code
type Code string

const (
	// Configuration errors
	CodeConfigLoad    Code = "CONFIG_LOAD"
	CodeConfigInvalid Code = "CONFIG_INVALID"

	// Element lookup errors
	CodeElementNotFound Code = "ELEMENT_NOT_FOUND"
	CodeBadgeNotFound   Code = "BADGE_NOT_FOUND"

	// Extraction errors
	CodeMalformedPrice Code = "MALFORMED_PRICE"
	CodeCardExtraction Code = "CARD_EXTRACTION"

	// Catalog/cart errors
	CodeIndexOutOfRange     Code = "INDEX_OUT_OF_RANGE"
	CodeEmptyCatalog        Code = "EMPTY_CATALOG"
	CodeInsufficientCatalog Code = "INSUFFICIENT_CATALOG"

	// Flow errors
	CodeLoginFailed Code = "LOGIN_FAILED"
	CodeDriver      Code = "DRIVER"
)

// Error is the structured error used across the framework
type Error struct {
	Code       Code
	Message    string
	Underlying error
	Context    map[string]any
}

// New creates a new structured error
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// Newf creates a new structured error with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with framework error context
func Wrap(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:       code,
		Message:    message,
		Underlying: err,
		Context:    make(map[string]any),
	}
}

// WithContext adds a context key-value pair to the error
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// Error implements the error interface
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if len(e.Context) > 0 {
		sb.WriteString(" {")
		first := true
		for k, v := range e.Context {
			if !first {
				sb.WriteString(", ")
			}
			sb.WriteString(fmt.Sprintf("%s: %v", k, v))
			first = false
		}
		sb.WriteString("}")
	}

	if e.Underlying != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.Underlying))
	}

	return sb.String()
}

// Unwrap returns the underlying error for errors.Is/As
func (e *Error) Unwrap() error {
	return e.Underlying
}

// IsCode checks if an error has a specific error code
func IsCode(err error, code Code) bool {
	if err == nil {
		return false
	}
	frameErr, ok := err.(*Error)
	if !ok {
		return false
	}
	return frameErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return ""
	}
	frameErr, ok := err.(*Error)
	if !ok {
		return CodeDriver
	}
	return frameErr.Code
}
