package api

import (
	"errors"
	"fmt"
	"net/http"
)

// NetworkErrorMessage is shown when the backend gave no usable message.
const NetworkErrorMessage = "Network error. Please try again."

var (
	ErrMissingID      = errors.New("api: resource id is required")
	ErrMissingPayload = errors.New("api: response envelope has no data")
	ErrBadResponse    = errors.New("api: malformed backend response")
)

// Error is a failed backend call. Network is true when no structured
// message was available: a transport failure or an error body without an
// "error" field.
type Error struct {
	Resource string
	Status   int // 0 for transport failures
	Message  string
	Network  bool
	Err      error
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s api: %s: %v", e.Resource, e.Message, e.Err)
	}
	return fmt.Sprintf("%s api: %d %s", e.Resource, e.Status, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus is the status a dashboard handler should answer with.
func (e *Error) HTTPStatus() int {
	if e.Status == 0 {
		return http.StatusBadGateway
	}
	return e.Status
}

// AsError unwraps err into an *Error.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
