package editor

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code surfaced at the controller boundary.
type Code string

// Error codes for the editing session.
const (
	// Validation failures; no state change occurred.
	ErrCodeInvalidGeometry Code = "INVALID_GEOMETRY"
	ErrCodeInvalidName     Code = "INVALID_NAME"
	ErrCodeInvalidNumber   Code = "INVALID_NUMBER"
	ErrCodeInvalidShader   Code = "INVALID_SHADER"

	// Not-found conditions; recoverable, caller re-fetches current state.
	ErrCodeZoneNotFound   Code = "ZONE_NOT_FOUND"
	ErrCodeLayoutNotFound Code = "LAYOUT_NOT_FOUND"

	// External service round-trip failures; in-memory state untouched.
	ErrCodeLoadFailed Code = "LOAD_FAILED"
	ErrCodeSaveFailed Code = "SAVE_FAILED"

	// Clipboard conditions.
	ErrCodeClipboardEmpty   Code = "CLIPBOARD_EMPTY"
	ErrCodeClipboardInvalid Code = "CLIPBOARD_INVALID"

	// Session-level conditions.
	ErrCodeNoLayout    Code = "NO_LAYOUT"
	ErrCodeNoSelection Code = "NO_SELECTION"
	ErrCodeNoExpansion Code = "NO_EXPANSION"
	ErrCodeNoDivider   Code = "NO_DIVIDER"
)

// Error is a structured error with a code, an optional offending zone id and
// an optional cause.
type Error struct {
	Code    Code
	ZoneID  string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// newError creates an Error with a formatted message.
func newError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// zoneError creates an Error carrying the offending zone id.
func zoneError(code Code, zoneID, format string, args ...any) *Error {
	return &Error{Code: code, ZoneID: zoneID, Message: fmt.Sprintf(format, args...)}
}

// wrapError creates an Error wrapping an underlying cause.
func wrapError(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, or empty when it is not an
// editor error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
