package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidCurrency indicates an unknown or inactive currency code.
var ErrInvalidCurrency = errors.New("invalid or inactive currency")

// ErrNoRouteAvailable indicates that no payment method can carry the requested transfer.
var ErrNoRouteAvailable = errors.New("no route available")

// ErrRateUnavailable indicates that no exchange rate could be found for a currency pair.
var ErrRateUnavailable = errors.New("exchange rate unavailable")

// ErrQuoteNotUsable indicates a quote that does not exist, has expired or was already used.
var ErrQuoteNotUsable = errors.New("quote not found, expired, or already used")

// ErrRouteNotFound indicates that the selected payment method was not part of the quote.
var ErrRouteNotFound = errors.New("selected payment method not available for this quote")

// ErrIntegrity indicates an inconsistency between the catalog, stored quotes and the rail registry.
// It is never caused by client input.
var ErrIntegrity = errors.New("integrity error")

// ErrRailTimeout indicates that a rail did not answer within the configured deadline.
var ErrRailTimeout = errors.New("payment rail timed out")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationError returns an AppError that matches ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// HTTPStatus maps an error onto the status code handlers should answer with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidCurrency), errors.Is(err, ErrRouteNotFound):
		return http.StatusBadRequest
	case errors.Is(err, ErrQuoteNotUsable), errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrNoRouteAvailable), errors.Is(err, ErrRateUnavailable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrRailTimeout):
		return http.StatusGatewayTimeout
	}

	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 && !errors.Is(err, ErrIntegrity) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// IsClientError reports whether err was caused by the caller's input.
func IsClientError(err error) bool {
	status := HTTPStatus(err)
	return status >= 400 && status < 500
}
