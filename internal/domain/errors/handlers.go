package errors

import (
	"pymerp/internal/errors"
)

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "COMPANY_NOT_FOUND"
	Details any    `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the error envelope written by the HTTP error handler.
// It has the same shape as a successful response without data.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// FieldError names a single invalid input field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError is a validation AppError carrying per-field diagnostics.
type ValidationError struct {
	*BaseError
	Fields []FieldError
}

// NewValidationError builds a validation error from base with field diagnostics.
func NewValidationError(base *BaseError, fields ...FieldError) *ValidationError {
	details := ""
	if len(fields) > 0 {
		details = fields[0].Field + ": " + fields[0].Reason
	}

	return &ValidationError{BaseError: base.WithDetails(details), Fields: fields}
}

// Unwrap exposes the base error so errors.Is matches the predefined value.
func (e *ValidationError) Unwrap() error {
	return e.BaseError
}

// ToResponse converts any error into the error envelope and its HTTP status.
// Errors that are not AppErrors are reported as internal errors without leaking details.
func ToResponse(err error) (int, Response) {
	if vErr, ok := errors.AsType[*ValidationError](err); ok {
		return vErr.HTTPCode(), Response{
			Success: false,
			Code:    vErr.HTTPCode(),
			Message: vErr.Message(),
			Error:   &ErrorInfo{Code: vErr.ErrorCode(), Details: vErr.Fields},
		}
	}

	appErr, ok := errors.AsType[AppError](err)
	if !ok {
		appErr = ErrInternalError
	}

	info := &ErrorInfo{Code: appErr.ErrorCode()}
	if d := appErr.Details(); d != "" {
		info.Details = d
	}

	return appErr.HTTPCode(), Response{
		Success: false,
		Code:    appErr.HTTPCode(),
		Message: appErr.Message(),
		Error:   info,
	}
}
