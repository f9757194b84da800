package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tareas/internal/app"
	"github.com/thenoetrevino/tareas/internal/config"
	"github.com/thenoetrevino/tareas/internal/database"
	"github.com/thenoetrevino/tareas/internal/logging"
	"github.com/thenoetrevino/tareas/internal/seed"
	"github.com/thenoetrevino/tareas/internal/tui/core"
)

// Launch starts the TUI application
func Launch() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logging to file before anything else touches the terminal
	if err := logging.Init(cfg.Log.Dir, cfg.Log.Level); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	db, err := database.InitDB(ctx, cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// database cleanup
	defer func() {
		// Create drain context with 5-second timeout
		drainCtx, drainCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer drainCancel()

		// Allow time for in-flight writes to complete
		select {
		case <-drainCtx.Done():
			slog.Info("drain period complete, closing database")
		case <-time.After(100 * time.Millisecond):
		}

		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	source, err := seed.FromConfig(ctx, cfg)
	if err != nil {
		slog.Warn("seed source unavailable, starting without seed", "source", cfg.Seed.Source, "error", err)
		source = seed.None{}
	}

	application := app.New(db, app.WithConfig(cfg), app.WithSeedSource(source))
	tuiApp := core.New(ctx, application)
	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		// The program exits on its own once the context is cancelled
		select {
		case <-errChan:
		case <-time.After(5 * time.Second):
			slog.Warn("program did not exit in time")
		}
	}

	return nil
}
