package database

import "context"

// Well-known keys
const (
	KeyUser  = "user"
	KeyTasks = "tasks"
)

// KeyValueStore is the storage medium behind the task and profile services.
// Values are opaque serialized text blobs.
type KeyValueStore interface {
	// Get returns the value for key and whether it was present
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes value under key, replacing any prior value in a single write
	Set(ctx context.Context, key, value string) error
	// Delete removes key; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error
	// Clear removes every key
	Clear(ctx context.Context) error
}

// Compile-time verification that *KVRepo implements KeyValueStore
var _ KeyValueStore = (*KVRepo)(nil)
