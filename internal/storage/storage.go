package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Store.Get when no value exists under the key.
var ErrNotFound = errors.New("storage: key not found")

// Store is a string-keyed persistent key-value store. Implementations must
// scope their contents to the application's namespace so two deployments
// sharing a backend do not see each other's data.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
