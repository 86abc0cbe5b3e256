// Package models defines the Beerter API payloads the client exchanges with
// the remote service. Request types carry validator tags checked by the
// services layer before anything is sent.
package models
