package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is an error that already knows how it should be rendered.
// Delivery layers translate domain errors into HTTPError before responding.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
	Data       any
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.StatusCode, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// WithData attaches a response payload (e.g. conflict details).
func (e *HTTPError) WithData(data any) *HTTPError {
	e.Data = data
	return e
}

// Wrap records the underlying cause without exposing it in the message.
func (e *HTTPError) Wrap(err error) *HTTPError {
	e.Err = err
	return e
}

// NewHTTPError builds an HTTPError whose error code equals the status code.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Code:       statusCode,
		Message:    message,
	}
}

func BadRequest(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}

func NotFound(message string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message)
}

func Conflict(message string) *HTTPError {
	return NewHTTPError(http.StatusConflict, message)
}

func BadGateway(message string) *HTTPError {
	return NewHTTPError(http.StatusBadGateway, message)
}

func TooManyRequests(message string) *HTTPError {
	return NewHTTPError(http.StatusTooManyRequests, message)
}

func Internal(err error) *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, "internal server error").Wrap(err)
}

// AsHTTPError returns err as an *HTTPError, wrapping unknown errors as 500.
func AsHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return Internal(err)
}
