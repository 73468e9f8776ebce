package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned after any 401 response. By the time a
// caller sees it the stored session has already been cleared and the
// OnUnauthorized hook has fired; the only recovery is to log in again.
var ErrUnauthorized = errors.New("authentication required")

// Error is a transport-level failure: a non-2xx response or a network
// error. Message carries the server-supplied message when one was
// decodable, otherwise a generic description. Status is zero for pure
// network failures.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("api: %s", e.Message)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// DecodeError marks a defective response body: an unparsable envelope,
// or a nominally successful call whose envelope carried no data.
type DecodeError struct {
	Path   string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("api: decoding response from %s: %s", e.Path, e.Reason)
}
