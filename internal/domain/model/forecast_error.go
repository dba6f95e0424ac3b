package model

import "errors"

const (
	// LocationNotFoundMessage is used when the provider rejects a request without a readable reason.
	LocationNotFoundMessage = "Location not found"
	// UnknownErrorMessage is used when a transport failure carries no description.
	UnknownErrorMessage = "An unknown error occurred."
)

// ErrorKind classifies a failed forecast fetch.
type ErrorKind string

const (
	ErrorKindProvider ErrorKind = "PROVIDER"
	ErrorKindNetwork  ErrorKind = "NETWORK"
	ErrorKindUnknown  ErrorKind = "UNKNOWN"
)

// ProviderError means the weather provider understood the request and rejected it
// (unknown location, invalid key, quota exceeded).
type ProviderError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *ProviderError) Error() string {
	return e.Message
}

// NewProviderError builds a ProviderError, falling back to LocationNotFoundMessage.
func NewProviderError(statusCode, code int, message string) *ProviderError {
	if message == "" {
		message = LocationNotFoundMessage
	}
	return &ProviderError{StatusCode: statusCode, Code: code, Message: message}
}

// NetworkError means the request never completed or its body could not be decoded.
type NetworkError struct {
	Message string
	Err     error
}

func (e *NetworkError) Error() string {
	return e.Message
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError wraps err, falling back to UnknownErrorMessage when it has no description.
func NewNetworkError(err error) *NetworkError {
	message := UnknownErrorMessage
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	return &NetworkError{Message: message, Err: err}
}

// ErrorKindOf reports which kind of fetch failure err is.
func ErrorKindOf(err error) ErrorKind {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return ErrorKindProvider
	}
	var networkErr *NetworkError
	if errors.As(err, &networkErr) {
		return ErrorKindNetwork
	}
	return ErrorKindUnknown
}

// ErrorMessageOf returns the message to display for err.
func ErrorMessageOf(err error) string {
	if err == nil {
		return ""
	}
	if err.Error() == "" {
		return UnknownErrorMessage
	}
	return err.Error()
}
