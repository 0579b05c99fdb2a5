package errors

import (
	"net/http"

	"payverify/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
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

// Is reports whether target carries the same business error code.
// Errors derived through WithDetails or WithMessage still match their parent.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
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

// Message returns the user-friendly error message
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

// WithMessage returns a copy with a different user-facing message and the same code.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Missing required fields",
		"",
	)

	ErrMissingRegistrationFields = ErrValidationFailed.WithMessage("Missing required fields")

	ErrMissingLoginFields = ErrValidationFailed.WithMessage("Missing username, account number or password")

	ErrMissingVerificationFields = ErrValidationFailed.WithMessage(
		"Missing required fields. Please provide accountNumber, senderEmail, receiverEmail, and accountInfo.",
	)

	ErrMissingSwiftCode = ErrValidationFailed.WithMessage("Missing SWIFT code in request body.")

	ErrFieldTooLong = ErrValidationFailed.WithMessage("One or more fields exceed the maximum length")

	ErrPasswordTooLong = ErrValidationFailed.WithMessage("Password must not exceed 72 bytes")

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// ErrEmailAlreadyRegistered is the fast-path conflict found before inserting.
	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_ALREADY_REGISTERED",
		"Email already registered",
		"",
	)

	// ErrUserAlreadyExists is the conflict reported by the store's unique constraints at insert time.
	ErrUserAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"USER_ALREADY_EXISTS",
		"A user with this email or username and account number is already registered",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Server error during registration",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	// Account verification outcomes
	ErrSenderNotFound = NewBaseError(
		http.StatusNotFound,
		"SENDER_NOT_FOUND",
		"Sender email not found in system.",
		"",
	)

	ErrSenderAccountMismatch = NewBaseError(
		http.StatusBadRequest,
		"SENDER_ACCOUNT_MISMATCH",
		"Sender account number does not match the provided email.",
		"",
	)

	ErrReceiverNotFound = NewBaseError(
		http.StatusNotFound,
		"RECEIVER_NOT_FOUND",
		"Receiver email not found in system.",
		"",
	)

	ErrReceiverAccountMismatch = NewBaseError(
		http.StatusBadRequest,
		"RECEIVER_ACCOUNT_MISMATCH",
		"Receiver account number does not match records.",
		"",
	)

	// Bank code outcomes
	ErrSwiftCodeNotFound = NewBaseError(
		http.StatusNotFound,
		"SWIFT_CODE_NOT_FOUND",
		"SWIFT code not valid or not found.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
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

// Unwrap exposes the driver error for logging and errors.Is checks.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
