package scheduling

import (
	"errors"
	"fmt"
)

// Error codes surfaced to the service layer.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeSlotUnavailable   = "SLOT_UNAVAILABLE"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeBlockConflict     = "HAS_EXISTING_APPOINTMENTS"
)

// Error is a typed scheduling-domain error carrying a machine-readable code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(format string, args ...any) error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func NewSlotUnavailableError(format string, args ...any) error {
	return &Error{Code: CodeSlotUnavailable, Message: fmt.Sprintf(format, args...)}
}

func NewInvalidTransitionError(format string, args ...any) error {
	return &Error{Code: CodeInvalidTransition, Message: fmt.Sprintf(format, args...)}
}

func NewBlockConflictError(format string, args ...any) error {
	return &Error{Code: CodeBlockConflict, Message: fmt.Sprintf(format, args...)}
}

// ErrCode extracts the domain error code, or "" for untyped errors.
func ErrCode(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
