package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tareas/internal/app"
	"github.com/thenoetrevino/tareas/internal/config"
	"github.com/thenoetrevino/tareas/internal/database"
	"github.com/thenoetrevino/tareas/internal/seed"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is false when the app was injected and belongs to the caller
	owned bool
}

// NewCLI opens the configured database and wires the services
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.InitDB(ctx, cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	source, err := seed.FromConfig(ctx, cfg)
	if err != nil {
		// A broken seed source only means no seed; the board still works
		slog.Warn("seed source unavailable", "source", cfg.Seed.Source, "error", err)
		source = seed.None{}
	}

	application := app.New(db, app.WithConfig(cfg), app.WithSeedSource(source))
	return &CLI{App: application, owned: true}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
