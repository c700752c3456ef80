package errors

import (
	"net/http"

	"openspace/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. Several messages are fixed wire contracts of the
// login and identity-resolution endpoints and must not be reworded.
var (
	// Authentication errors. Wrong email and wrong password share one
	// message so callers cannot tell which part failed.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"INCORRECT EMAIL OR PASSWORD",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHORIZED",
		"NOT AUTHORIZED",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"INVALID TOKEN",
		"",
	)

	ErrTokenVerification = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_VERIFICATION_ERROR",
		"TOKEN VERIFICATION ERROR",
		"",
	)

	// ErrAccountGone covers a valid token whose subject account no longer
	// exists. Same 401 bucket as the other resolution failures so deleted
	// accounts are not distinguishable from bad tokens.
	ErrAccountGone = NewBaseError(
		http.StatusUnauthorized,
		"ACCOUNT_NOT_FOUND",
		"ACCOUNT NOT FOUND",
		"",
	)

	// Authorization errors.
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"FORBIDDEN",
		"",
	)

	ErrCompanyMismatch = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN_COMPANY_MISMATCH",
		"FORBIDDEN_COMPANY_MISMATCH",
		"",
	)

	// Registration errors.
	ErrEmailConflict = NewBaseError(
		http.StatusConflict,
		"EMAIL_CONFLICT",
		"EMAIL ALREADY REGISTERED",
		"",
	)

	ErrEmptyPassword = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_PASSWORD",
		"PASSWORD MUST NOT BE EMPTY",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"PASSWORD PROCESSING ERROR",
		"",
	)

	// Resource errors.
	ErrCompanyNotFound = NewBaseError(
		http.StatusNotFound,
		"COMPANY_NOT_FOUND",
		"COMPANY_NOT_FOUND",
		"",
	)

	ErrAssignmentNotFound = NewBaseError(
		http.StatusNotFound,
		"ASSIGNMENT_NOT_FOUND",
		"ASSIGNMENT_NOT_FOUND",
		"",
	)

	ErrAccountNotApplicant = NewBaseError(
		http.StatusBadRequest,
		"ACCOUNT_NOT_APPLICANT",
		"ACCOUNT_NOT_APPLICANT",
		"",
	)

	// Validation errors.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"INVALID INPUT",
		"",
	)

	// Transaction errors.
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"DATABASE TRANSACTION FAILED",
		"",
	)

	// General errors.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"INTERNAL SERVER ERROR",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"RESOURCE NOT FOUND",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"RESOURCE CONFLICT",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing error message
func (e *DatabaseExecuteError) Message() string {
	return "DATABASE EXECUTION FAILED"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
