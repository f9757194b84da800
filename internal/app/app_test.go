package app

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/tareas/internal/config"
	"github.com/thenoetrevino/tareas/internal/database"
	"github.com/thenoetrevino/tareas/internal/seed"
	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	db.SetMaxOpenConns(1)

	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func TestNew(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	app := New(db)

	if app == nil {
		t.Fatal("Expected app to be created, got nil")
	}
	if app.TaskService == nil {
		t.Error("Expected TaskService to be initialized")
	}
	if app.UserService == nil {
		t.Error("Expected UserService to be initialized")
	}
	if app.Config == nil || app.Config.Seed.Limit != config.DefaultSeedLimit {
		t.Error("Expected default config when none is given")
	}
}

func TestNew_WiresSeedLimitAndClock(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	cfg := config.Default()
	cfg.Seed.Limit = 2
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	app := New(db,
		WithConfig(cfg),
		WithSeedSource(seed.Static{"one", "two", "three"}),
		WithClock(func() time.Time { return now }),
	)

	tasks, err := app.TaskService.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected seed limit 2 to apply, got %d tasks", len(tasks))
	}
	if !tasks[0].Modified.Equal(now) {
		t.Errorf("expected injected clock, got %v", tasks[0].Modified)
	}
}

func TestSignOutResetsTasks(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	app := New(db, WithSeedSource(seed.Static{"one"}))
	ctx := context.Background()

	if _, err := app.UserService.Register(ctx, "Ada", "1990-12-10"); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if _, err := app.TaskService.Add(ctx, "Buy milk"); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	if err := app.UserService.SignOut(ctx); err != nil {
		t.Fatalf("SignOut() failed: %v", err)
	}

	if got := app.TaskService.Tasks(); len(got) != 0 {
		t.Errorf("expected task store to be reset, got %d tasks", len(got))
	}
}

func TestClose(t *testing.T) {
	db := setupTestDB(t)

	app := New(db)

	if err := app.Close(); err != nil {
		t.Errorf("Expected Close to return nil, got %v", err)
	}
	if err := db.PingContext(context.Background()); err == nil {
		t.Error("Expected database to be closed")
	}
}
