package errors

import (
	"errors"
	"fmt"
)

// Sentinels matched with errors.Is.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternal            = errors.New("internal error")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInsufficientPayment = errors.New("insufficient payment")
)

// Error codes carried by AppError.
const (
	CodeNotFound            = "NOT_FOUND"
	CodeInvalidInput        = "INVALID_INPUT"
	CodeEmptyCart           = "EMPTY_CART"
	CodeInsufficientPayment = "INSUFFICIENT_PAYMENT"
	CodeInternal            = "INTERNAL_ERROR"
)

const internalMessage = "an internal error occurred"

// AppError is an error with a stable code and a message that is safe to show
// to the shopper. Err holds the sentinel and, for internal errors, the cause.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Code + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func newAppError(code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NotFound reports that no resource of the given kind has key id.
func NotFound(resource, id string) *AppError {
	return newAppError(CodeNotFound, fmt.Sprintf("no %s matching %s", resource, id), ErrNotFound)
}

// InvalidInput reports unusable input.
func InvalidInput(message string) *AppError {
	return newAppError(CodeInvalidInput, message, ErrInvalidInput)
}

// EmptyCart reports an operation that needs at least one cart entry.
func EmptyCart() *AppError {
	return newAppError(CodeEmptyCart, "your cart is empty", ErrEmptyCart)
}

// InsufficientPayment reports a tendered amount below the amount due.
func InsufficientPayment(due, tendered float64) *AppError {
	return newAppError(CodeInsufficientPayment,
		fmt.Sprintf("payment %.2f cannot be less than subtotal %.2f", tendered, due),
		ErrInsufficientPayment)
}

// Internal wraps an unexpected failure. The result matches both ErrInternal
// and cause.
func Internal(cause error) *AppError {
	return newAppError(CodeInternal, internalMessage, fmt.Errorf("%w: %w", ErrInternal, cause))
}

// Wrap prefixes err with message, keeping it matchable.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// Message returns the shopper-facing text for err.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return internalMessage
}

// Code returns the AppError code found in err's chain, or CodeInternal.
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}
