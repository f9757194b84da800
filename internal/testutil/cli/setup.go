package cli

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/tareas/internal/app"
	"github.com/thenoetrevino/tareas/internal/models"
	"github.com/thenoetrevino/tareas/internal/seed"
	"github.com/thenoetrevino/tareas/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// Seeding is disabled so every test starts from an empty board.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return db, app.New(db, app.WithSeedSource(seed.None{}))
}

// SetupCLITestAsUser is SetupCLITest with a registered user, which the
// task and board commands require
func SetupCLITestAsUser(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db, a := SetupCLITest(t)
	RegisterTestUser(t, a, "Test User")
	return db, a
}

// SetupCLITestWithSeed is SetupCLITestAsUser with a static seed feed
func SetupCLITestWithSeed(t *testing.T, items ...string) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	a := app.New(db, app.WithSeedSource(seed.Static(items)))
	RegisterTestUser(t, a, "Test User")
	return db, a
}

// RegisterTestUser stores a valid profile
func RegisterTestUser(t *testing.T, a *app.App, name string) models.Profile {
	t.Helper()
	dob := time.Now().AddDate(-30, 0, 0).Format(models.DOBLayout)
	profile, err := a.UserService.Register(context.Background(), name, dob)
	if err != nil {
		t.Fatalf("Failed to register test user: %v", err)
	}
	return profile
}

// CreateTestTask adds a todo task and returns its ID
func CreateTestTask(t *testing.T, a *app.App, text string) string {
	t.Helper()
	ctx := context.Background()
	if _, err := a.TaskService.Load(ctx); err != nil {
		t.Fatalf("Failed to load tasks: %v", err)
	}
	tasks, err := a.TaskService.Add(ctx, text)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return tasks[len(tasks)-1].ID
}
