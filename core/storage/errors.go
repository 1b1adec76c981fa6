package storage

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/smithy-go"
)

// ResponseError is the driver-neutral form of a failed storage call.
// It satisfies smithy.APIError so callers can extract the code and message
// the same way regardless of which driver produced it.
type ResponseError struct {
	// Code is the machine-readable error code (e.g. NoSuchKey, AccessDenied).
	Code string
	// Message is the human-readable message reported by the service.
	Message string
	// StatusCode is the HTTP status, or 0 when the request never completed.
	StatusCode int
	// Err is the error returned by the underlying client library.
	Err error
}

var _ smithy.APIError = (*ResponseError)(nil)

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ResponseError) Unwrap() error { return e.Err }

// ErrorCode returns the error code.
func (e *ResponseError) ErrorCode() string { return e.Code }

// ErrorMessage returns the service message.
func (e *ResponseError) ErrorMessage() string { return e.Message }

// ErrorFault attributes the failure to client or server from the HTTP status.
func (e *ResponseError) ErrorFault() smithy.ErrorFault {
	switch {
	case e.StatusCode >= http.StatusInternalServerError:
		return smithy.FaultServer
	case e.StatusCode >= http.StatusBadRequest:
		return smithy.FaultClient
	default:
		return smithy.FaultUnknown
	}
}

// Details extracts the code and message from any error implementing
// smithy.APIError. ok is false when err carries no such details.
func Details(err error) (code, message string, ok bool) {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return "", "", false
	}
	return apiErr.ErrorCode(), apiErr.ErrorMessage(), true
}
