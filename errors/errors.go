package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a requested fixture or document was not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput indicates invalid user input
	ErrInvalidInput = errors.New("invalid input")

	// ErrRemoteUnavailable indicates the optional question store could not
	// serve a request (connection failure, timeout, empty result set)
	ErrRemoteUnavailable = errors.New("remote question service unavailable")

	// ErrStoreDisabled indicates no question store was configured
	ErrStoreDisabled = errors.New("question store disabled")
)

// WrapError wraps an error with a context message
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// WrapErrorf wraps an error with a formatted context message
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsNotFound checks if error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsRemoteUnavailable checks if error indicates the question store could not serve
func IsRemoteUnavailable(err error) bool {
	return errors.Is(err, ErrRemoteUnavailable) || errors.Is(err, ErrStoreDisabled)
}

// IsInvalidInput checks if error is an invalid input error
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
