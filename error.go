package linknote

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are propagated through the pipeline so that callers can branch on
// the kind of failure without string matching. ENOURL and ENOFETCHER are
// the two expected "no match" outcomes and must never be conflated with
// downstream service failures.
const (
	EINVALID   = "invalid"    // validation failed
	EINTERNAL  = "internal"   // internal error
	ENOTFOUND  = "not_found"  // entity does not exist
	ENOURL     = "no_url"     // message contains no extractable link
	ENOFETCHER = "no_fetcher" // no fetcher recognized the URL
)

// Error represents an application-specific error. Application errors carry
// a machine-readable code and a human-readable message.
type Error struct {
	// Code is one of the application error codes above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("linknote error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error."
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
