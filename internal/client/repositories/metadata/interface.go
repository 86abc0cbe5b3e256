// Package metadata stores small key/value records in the local database.
// The session token lives here under common.SessionTokenKey.
package metadata

import (
	"context"
)

// Repository is a key/value view over the metadata table.
// Get returns (nil, nil) for a missing key; Delete of a missing key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
