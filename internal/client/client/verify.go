package client

import (
	"fmt"

	"github.com/WayleX/Beerter/internal/client/models"
)

// VerifyResult is the outcome of a token verification: exactly one of
// Valid, Invalid or TransportError.
type VerifyResult interface {
	isVerifyResult()
}

// Valid means the server accepted the token.
type Valid struct {
	Identity models.Identity
}

// Invalid means the server rejected the token.
type Invalid struct {
	Reason string
}

// TransportError means verification could not complete; the token's
// validity is unknown.
type TransportError struct {
	Err error
}

func (Valid) isVerifyResult()          {}
func (Invalid) isVerifyResult()        {}
func (TransportError) isVerifyResult() {}

func (v Valid) String() string          { return "valid: " + v.Identity.DisplayName() }
func (i Invalid) String() string        { return "invalid: " + i.Reason }
func (t TransportError) String() string { return fmt.Sprintf("transport error: %v", t.Err) }
