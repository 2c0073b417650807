package domain

import "errors"

var (
	// ErrUnreachable marks a transport failure: the server could not be
	// reached or its reply could not be decoded.
	ErrUnreachable = errors.New("cannot reach server")

	ErrMalformedEnvelope  = errors.New("malformed response envelope")
	ErrBackendUnavailable = errors.New("session backend unavailable")
	ErrKeyNotFound        = errors.New("key not found")

	ErrBusy          = errors.New("another request is in progress")
	ErrMissingFields = errors.New("required fields are missing")
	ErrUnsupported   = errors.New("operation not supported on this page")
	ErrNotFound      = errors.New("item not found")
	ErrNoActiveModal = errors.New("no active modal")
	ErrNoChange      = errors.New("status is unchanged")
	ErrAccessDenied  = errors.New("access denied")
)

type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}
