package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalStorageRepository is durable client-local key/value storage with
// browser localStorage semantics: values survive restarts until removed.
type LocalStorageRepository interface {
	// GetItem returns the value stored under key or [ErrItemNotFound].
	GetItem(ctx context.Context, key string) (string, error)
	// SetItem creates or overwrites the value stored under key.
	SetItem(ctx context.Context, key, value string) error
	// RemoveItem deletes key. Removing a missing key is not an error.
	RemoveItem(ctx context.Context, key string) error
}
