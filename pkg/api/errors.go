package api

import (
	"fmt"
	"net/http"
)

var (
	// ErrInvalidAPIKey is returned when the client has no API key.
	ErrInvalidAPIKey = NewError(http.StatusUnauthorized, "Invalid API key")

	// ErrNonNumericID is returned when a transaction ID is not a number.
	ErrNonNumericID = NewError(http.StatusBadRequest, "Transaction ID should be numeric")

	// ErrTransactionNotFound is returned when Paystack doesn't know the given transaction.
	ErrTransactionNotFound = NewError(http.StatusNotFound, "Transaction not found")

	// ErrClientClosed is returned when an operation is called after closing the client.
	ErrClientClosed = NewError(http.StatusInternalServerError, "Client session is closed")

	// ErrInvalidExportLocation is returned when Paystack doesn't return a valid URL for an exported file.
	ErrInvalidExportLocation = NewError(http.StatusInternalServerError, "Invalid export location")
)

// Error is the single error kind returned by the Paystack client. Callers branch on StatusCode:
// 400 and 401 are raised before any network call, 500 is used for transport failures and any other
// value is the status code returned by Paystack.
type Error struct {
	// StatusCode contains an HTTP status code.
	StatusCode int `json:"status_code"`

	// Message contains the error description. For errors returned by Paystack, it's the raw response body.
	Message string `json:"error_message"`
}

// NewError initializes a new Error.
func NewError(status int, message string) *Error {
	return &Error{
		StatusCode: status,
		Message:    message,
	}
}

// Errorf initializes a new Error with a formatted message.
func Errorf(status int, format string, args ...interface{}) *Error {
	return NewError(status, fmt.Sprintf(format, args...))
}

// MissingParameter returns the error used when a required field has not been provided.
func MissingParameter(name string) *Error {
	return Errorf(http.StatusBadRequest, "Missing required parameter: %s", name)
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// Is reports whether target is an *Error with the same status code and message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode && e.Message == t.Message
}
