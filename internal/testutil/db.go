package testutil

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/thenoetrevino/tareas/internal/database"
	"github.com/thenoetrevino/tareas/internal/models"
	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory database with the kv schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Every connection to :memory: is a fresh database
	db.SetMaxOpenConns(1)

	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SetupKV returns a key-value repository over a fresh in-memory database
func SetupKV(t *testing.T) *database.KVRepo {
	t.Helper()
	return database.NewKVRepo(SetupTestDB(t))
}

// StoreTasks writes tasks directly under the tasks key, bypassing the task store
func StoreTasks(t *testing.T, kv database.KeyValueStore, tasks ...models.Task) {
	t.Helper()
	data, err := json.Marshal(tasks)
	if err != nil {
		t.Fatalf("Failed to encode tasks: %v", err)
	}
	if err := kv.Set(context.Background(), database.KeyTasks, string(data)); err != nil {
		t.Fatalf("Failed to store tasks: %v", err)
	}
}

// ReadTasks decodes whatever is stored under the tasks key
func ReadTasks(t *testing.T, kv database.KeyValueStore) []models.Task {
	t.Helper()
	raw, ok, err := kv.Get(context.Background(), database.KeyTasks)
	if err != nil {
		t.Fatalf("Failed to read tasks: %v", err)
	}
	if !ok {
		return nil
	}
	var tasks []models.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		t.Fatalf("Failed to decode tasks: %v", err)
	}
	return tasks
}

// ErrStorage is returned by FailingKV writes
var ErrStorage = errors.New("storage unavailable")

// FailingKV wraps a store and fails every write once Fail is set
type FailingKV struct {
	database.KeyValueStore
	Fail bool
}

// Set implements database.KeyValueStore
func (f *FailingKV) Set(ctx context.Context, key, value string) error {
	if f.Fail {
		return ErrStorage
	}
	return f.KeyValueStore.Set(ctx, key, value)
}

// Clear implements database.KeyValueStore
func (f *FailingKV) Clear(ctx context.Context) error {
	if f.Fail {
		return ErrStorage
	}
	return f.KeyValueStore.Clear(ctx)
}
