package app

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/thenoetrevino/tareas/internal/config"
	"github.com/thenoetrevino/tareas/internal/database"
	taskservice "github.com/thenoetrevino/tareas/internal/services/task"
	userservice "github.com/thenoetrevino/tareas/internal/services/user"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db *sql.DB

	// Storage medium shared by every service
	KV database.KeyValueStore

	// Loaded configuration (defaults when none was supplied)
	Config *config.Config

	// Service layer (business logic)
	TaskService taskservice.Service
	UserService userservice.Service
}

// New creates a new App with all services initialized.
// The database must already be migrated.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.config == nil {
		cfg.config = config.Default()
	}
	if cfg.logger != nil {
		slog.SetDefault(cfg.logger)
	}

	kv := database.NewKVRepo(db)

	taskOpts := []taskservice.Option{taskservice.WithSeedLimit(cfg.config.Seed.Limit)}
	if cfg.now != nil {
		now := cfg.now
		taskOpts = append(taskOpts, taskservice.WithClock(func() time.Time { return now().Round(0) }))
	}
	if cfg.newID != nil {
		taskOpts = append(taskOpts, taskservice.WithIDGenerator(cfg.newID))
	}

	tasks := taskservice.NewStore(kv, cfg.seedSource, taskOpts...)

	return &App{
		db:          db,
		KV:          kv,
		Config:      cfg.config,
		TaskService: tasks,
		UserService: userservice.NewService(kv, cfg.now, tasks),
	}
}

// Close releases the database handle.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
