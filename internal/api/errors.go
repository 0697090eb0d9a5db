package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable covers connection-level failures: the request never
	// produced an HTTP response.
	ErrUnavailable = errors.New("analysis service unavailable")

	// ErrBadResponse covers 2xx responses whose body could not be decoded.
	ErrBadResponse = errors.New("malformed response from analysis service")
)

// StatusError is a non-2xx response from the service. Detail carries the
// service-provided description when the body had one.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("analysis service returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("analysis service returned %d", e.StatusCode)
}

// Reason extracts the user-facing description of a failed call: the
// service-provided detail when present, otherwise the error text itself.
func Reason(err error) string {
	var se *StatusError
	if errors.As(err, &se) && se.Detail != "" {
		return se.Detail
	}
	return err.Error()
}
