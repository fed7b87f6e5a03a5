package tinkoff

import (
	"errors"
	"fmt"
)

// Sentinel errors for client construction.
var (
	// ErrEmptyAcquiringURL indicates the client was constructed without a base URL.
	ErrEmptyAcquiringURL = errors.New("tinkoff: acquiring URL is empty")

	// ErrEmptyTerminalKey indicates the client was constructed without a terminal key.
	ErrEmptyTerminalKey = errors.New("tinkoff: terminal key is empty")

	// ErrEmptySecretKey indicates the client was constructed without a secret key.
	ErrEmptySecretKey = errors.New("tinkoff: secret key is empty")

	// ErrNoItems indicates Init was called with an empty receipt.
	ErrNoItems = errors.New("tinkoff: at least one line item is required")
)

// ValidationError reports a required request field that was not set.
// It is returned before any network I/O takes place.
type ValidationError struct {
	// Field is the name of the missing field, e.g. "Amount" or "Items[2].Price".
	Field string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("tinkoff: required field %s is missing", e.Field)
}

// TransportError reports a failure to reach the gateway or to decode its
// response. URL and Body identify the request that failed, for diagnosis.
type TransportError struct {
	// URL is the endpoint the request was sent to.
	URL string

	// Body is the serialized request body.
	Body string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("tinkoff: request to %s failed: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// GatewayError is a non-zero ErrorCode reported by the gateway.
type GatewayError struct {
	// Code is the gateway error code.
	Code int

	// Message is the short error message ("Unknown error." if absent).
	Message string

	// Details is the extended error description ("Unknown error." if absent).
	Details string
}

// Error implements the error interface.
func (e *GatewayError) Error() string {
	return fmt.Sprintf("tinkoff: gateway error %d: %s: %s", e.Code, e.Message, e.Details)
}
