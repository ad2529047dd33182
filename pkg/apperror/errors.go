package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err is an *AppError carrying code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// ---- Request validation (REQ) ----

// Validation returns a REQ_001 validation error.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}

// ErrPayloadTooLarge returns a REQ_002 error for oversized request bodies.
func ErrPayloadTooLarge(limit int64) *AppError {
	return New("REQ_002", fmt.Sprintf("Request body exceeds %d bytes", limit), http.StatusRequestEntityTooLarge)
}

// ---- Wallet (WAL) ----

func ErrInsufficientFunds() *AppError {
	return New("WAL_001", "Insufficient funds. Please add funds to your wallet", http.StatusPaymentRequired)
}

func ErrInvalidAmount() *AppError {
	return New("WAL_002", "Please enter a valid amount", http.StatusBadRequest)
}

func ErrTopupBelowMinimum(minimum int64) *AppError {
	return New("WAL_003", fmt.Sprintf("Minimum top-up amount is %d", minimum), http.StatusBadRequest)
}

// ---- Stores & products (STR) ----

func ErrStoreNotRecognized() *AppError {
	return New("STR_001", "Store code not recognized", http.StatusNotFound)
}

func ErrStoreNotAvailable(status string) *AppError {
	return New("STR_002", fmt.Sprintf("This store is currently %s", status), http.StatusForbidden)
}

func ErrProductNotInStore() *AppError {
	return New("STR_003", "Product not found in this store", http.StatusNotFound)
}

// ---- Basket (BSK) ----

func ErrNoActiveStore() *AppError {
	return New("BSK_001", "Please enter a store first", http.StatusConflict)
}

func ErrBasketEmpty() *AppError {
	return New("BSK_002", "Basket is empty", http.StatusUnprocessableEntity)
}

// ---- Lookup misses (NF) ----

func ErrNotFound(entity string) *AppError {
	return New("NF_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid email or password", http.StatusUnauthorized)
}

func ErrEmailExists() *AppError {
	return New("AUTH_002", "Could not create account", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbiddenRole(role string) *AppError {
	return New("AUTH_004", fmt.Sprintf("Role %s cannot access this resource", role), http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ErrStillSettling is returned when the caller stops waiting before a
// simulated operation settled. The operation itself still completes.
func ErrStillSettling(err error) *AppError {
	return Wrap("SYS_002", "Operation is still being processed", http.StatusServiceUnavailable, err)
}
