// Package client contains the Beerter API client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     every endpoint the CLI uses: auth (Register/Login/Verify/Logout),
//     beers, reviews, feed and likes.
//  2. A concrete JSON-over-HTTP implementation (see HTTPClient) that reads
//     the bearer token from a TokenSource at call time, stamps every request
//     with an X-Request-ID and maps HTTP statuses to sentinel errors.
//  3. A tagged verification result (VerifyResult) so callers never have to
//     sniff response bodies for "Invalid token" markers themselves.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, common.ErrNoToken. Application
// failures carry the server's message in *APIError (errors.As).
//
// The client never retries. Callers own retry policy.
package client
