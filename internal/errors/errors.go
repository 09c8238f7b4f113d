package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode identifies a class of window management failure.
type ErrorCode string

const (
	ErrUnknownWindowType   ErrorCode = "UNKNOWN_WINDOW_TYPE"
	ErrInvalidAnchor       ErrorCode = "INVALID_ANCHOR"
	ErrUnknownKey          ErrorCode = "UNKNOWN_KEY"
	ErrArrangementOverflow ErrorCode = "ARRANGEMENT_OVERFLOW"
	ErrInvalidRequest      ErrorCode = "INVALID_REQUEST"
)

// WinError is a structured error with a code and optional details.
type WinError struct {
	Code    ErrorCode
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *WinError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewUnknownWindowType is returned when no template is declared for a window type.
func NewUnknownWindowType(windowType string) *WinError {
	return &WinError{
		Code:    ErrUnknownWindowType,
		Message: fmt.Sprintf("no template declared for window type %q", windowType),
		Details: map[string]any{"type": windowType},
	}
}

// NewInvalidAnchor is returned when an anchor token cannot be parsed.
func NewInvalidAnchor(token, reason string) *WinError {
	return &WinError{
		Code:    ErrInvalidAnchor,
		Message: fmt.Sprintf("invalid anchor %q: %s", token, reason),
		Details: map[string]any{"anchor": token},
	}
}

// NewUnknownKey is returned when a window key is not in the registry.
func NewUnknownKey(key string) *WinError {
	return &WinError{
		Code:    ErrUnknownKey,
		Message: fmt.Sprintf("window not found: %s", key),
		Details: map[string]any{"key": key},
	}
}

// NewArrangementOverflow is returned when cascading exceeds its move budget.
func NewArrangementOverflow(key string, moves int) *WinError {
	return &WinError{
		Code:    ErrArrangementOverflow,
		Message: fmt.Sprintf("window %s still overlaps after %d cascade moves", key, moves),
		Details: map[string]any{"key": key, "moves": moves},
	}
}

// NewInvalidRequest is returned for out-of-range or malformed arguments.
func NewInvalidRequest(msg string) *WinError {
	return &WinError{
		Code:    ErrInvalidRequest,
		Message: msg,
	}
}

// Is reports whether err, or any error it wraps, is a WinError with the given code.
func Is(err error, code ErrorCode) bool {
	var wErr *WinError
	if stderrors.As(err, &wErr) {
		return wErr.Code == code
	}
	return false
}
