// Package errors defines application errors carried from the use case layer
// to the delivery layer, where they are translated into HTTP responses.
package errors

import (
	"net/http"

	"dashboard/internal/errors"
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

// Predefined error types
var (
	// Product-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrProductNameTaken = NewBaseError(
		http.StatusConflict,
		"PRODUCT_NAME_TAKEN",
		"A product with this name already exists",
		"",
	)

	ErrInvalidProductInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRODUCT_INPUT",
		"Invalid product input",
		"",
	)

	ErrTooManyImages = NewBaseError(
		http.StatusBadRequest,
		"TOO_MANY_IMAGES",
		"Maximum 5 product images are allowed",
		"",
	)

	ErrNoImages = NewBaseError(
		http.StatusBadRequest,
		"NO_IMAGES",
		"At least one product image is required",
		"",
	)

	ErrProductPersistenceFailed = NewBaseError(
		http.StatusInternalServerError,
		"PRODUCT_PERSISTENCE_FAILED",
		"Failed to save product",
		"",
	)

	// Media-related errors
	ErrMediaUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"MEDIA_UPLOAD_FAILED",
		"Failed to upload product images",
		"",
	)

	// Order-related errors
	ErrInvalidOrderInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ORDER_INPUT",
		"Not all required order data are provided",
		"",
	)

	ErrOrderPersistenceFailed = NewBaseError(
		http.StatusInternalServerError,
		"ORDER_PERSISTENCE_FAILED",
		"Failed to save order",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)
