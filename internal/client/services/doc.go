// Package services contains application services for the Beerter client.
//
// Each service composes the API client with the session for one feature
// area (auth, beers, reviews) so that the CLI only deals with validated
// inputs, domain models and sentinel errors.
package services
