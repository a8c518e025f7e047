package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"gp_tracker/pkg/errcodes"
)

// AppError is the domain error carried across layers. Code maps the error
// onto the engine's taxonomy (ValidationError, NotFound, PriceUnavailable, ...).
type AppError struct {
	Code    failure.ErrorCode
	Message string
	// Fields names every offending parameter for validation errors,
	// never just the first one.
	Fields []string
	cause  error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// ErrorCode exposes the taxonomy code to transport-level mappers.
func (e *AppError) ErrorCode() failure.ErrorCode {
	return e.Code
}

// FieldList exposes the offending field names to transport-level mappers.
func (e *AppError) FieldList() []string {
	return e.Fields
}

func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError lists all offending fields in one error.
func NewValidationError(fields []string) *AppError {
	return &AppError{
		Code:    errcodes.ValidationError,
		Message: fmt.Sprintf("invalid or missing parameters: %v", fields),
		Fields:  fields,
	}
}

func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}
