package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx response. Message is the text the server sent in
// "message", "detail" or "msg", or the status text when there was none.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Unwrap lets errors.Is classify the status: 401/403 as ErrUnauthorized,
// 502/503/504 as ErrUnavailable.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrUnavailable
	default:
		return nil
	}
}

// IsAuthError reports whether err means the session should be treated as
// invalid by the caller.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
