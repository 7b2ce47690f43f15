package errors

import "fmt"

// HTTPError is an error carrying the HTTP status code it should be
// rendered with. Delivery layers produce these in mapError; pkg/response
// inspects them when writing the reply.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}
