// Package common contains shared constants and sentinel errors used across
// Beerter client components.
package common

const (
	// AuthorizationHeaderName is the HTTP header carrying the bearer token.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the token in the Authorization header value.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName tags every outbound request for log correlation.
	RequestIDHeaderName = "X-Request-ID"

	// SessionTokenKey is the well-known key the access token is persisted under.
	SessionTokenKey = "token"
)
