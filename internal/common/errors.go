// Package common defines shared constants and sentinel errors used across
// the Beerter client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Session errors.
	ErrEmptyToken = errors.New("empty token")
	ErrNoToken    = errors.New("no session token")

	// Remote auth errors.
	ErrInvalidToken    = errors.New("invalid token")
	ErrNoAccessToken   = errors.New("no access token in login response")
	ErrNothingToUpdate = errors.New("nothing to update")
)
