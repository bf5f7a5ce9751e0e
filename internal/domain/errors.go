package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode standardizes failure semantics across the project lifecycle.
type ErrorCode string

const (
	CodeValidation        ErrorCode = "validation"
	CodeNotFound          ErrorCode = "not_found"
	CodePermissionDenied  ErrorCode = "permission_denied"
	CodeInvalidArgument   ErrorCode = "invalid_argument"
	CodeInvalidTransition ErrorCode = "invalid_transition"
	CodeConflict          ErrorCode = "conflict"
	CodeInternal          ErrorCode = "internal"
)

// Error is the canonical domain error wrapper.
type Error struct {
	Code    ErrorCode
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s (%s)", op, msg, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// NewError builds a domain error with explicit code + operation.
func NewError(code ErrorCode, op, message string, cause error) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

// Wrap annotates an existing error with domain error semantics.
func Wrap(code ErrorCode, op string, err error) error {
	if err == nil {
		return nil
	}
	return NewError(code, op, err.Error(), err)
}

// IsCode reports whether err (or a wrapped err) carries the given code.
func IsCode(err error, code ErrorCode) bool {
	var domErr *Error
	if !errors.As(err, &domErr) {
		return false
	}
	return domErr.Code == code
}

// CodeOf extracts the domain error code when available.
func CodeOf(err error) ErrorCode {
	var domErr *Error
	if !errors.As(err, &domErr) {
		return ""
	}
	return domErr.Code
}

func ValidationError(op, message string) error {
	return NewError(CodeValidation, op, message, nil)
}

func NotFoundError(op, message string) error {
	return NewError(CodeNotFound, op, message, nil)
}

func PermissionError(op, message string) error {
	return NewError(CodePermissionDenied, op, message, nil)
}

func InvalidArgumentError(op, message string) error {
	return NewError(CodeInvalidArgument, op, message, nil)
}

func InvalidTransitionError(op, message string) error {
	return NewError(CodeInvalidTransition, op, message, nil)
}

func ConflictError(op, message string) error {
	return NewError(CodeConflict, op, message, nil)
}
