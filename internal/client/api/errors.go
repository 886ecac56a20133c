package api

import "errors"

var (
	// ErrUnavailable means the request never produced an API response:
	// connection refused, DNS failure, timeout, or a malformed body.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the server rejected the auth token.
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is an API-reported failure: the server answered, set success=false,
// and (usually) supplied a message for the user.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return "request failed"
	}
	return e.Message
}
