package errors

import (
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context, keeping the original code
// when the cause is already an AppError.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCode attaches an error code to an existing error
func WithCode(code string, err error) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    code,
			Message: appErr.Message,
			Cause:   appErr.Cause,
		}
	}
	return &AppError{
		Code:    code,
		Message: err.Error(),
		Cause:   err,
	}
}

// GetCode returns the error code if it's an AppError, otherwise "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Error codes, one per failure stage. None of them is retried; every one
// is fatal to the current run and reported once at the top level.
const (
	CodeInputNotFound  = "INPUT_NOT_FOUND"
	CodeInputMalformed = "INPUT_MALFORMED"
	CodeRenderFailed   = "RENDER_FAILED"
	CodeWriteFailed    = "WRITE_FAILED"
	CodeConfigInvalid  = "CONFIG_INVALID"
	CodeInternalError  = "INTERNAL_ERROR"
)

// Common error constructors
func InputNotFound(message string) *AppError {
	return New(CodeInputNotFound, message)
}

func InputMalformed(message string) *AppError {
	return New(CodeInputMalformed, message)
}

func RenderFailed(message string) *AppError {
	return New(CodeRenderFailed, message)
}

func WriteFailed(message string) *AppError {
	return New(CodeWriteFailed, message)
}

func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}
