package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/tareas/internal/config"
	"github.com/thenoetrevino/tareas/internal/seed"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	config     *config.Config
	seedSource seed.Source
	logger     *slog.Logger
	now        func() time.Time
	newID      func() string
}

// WithConfig sets the loaded configuration
func WithConfig(c *config.Config) Option {
	return func(cfg *appConfig) {
		cfg.config = c
	}
}

// WithSeedSource sets where an empty board gets its first tasks from
func WithSeedSource(src seed.Source) Option {
	return func(cfg *appConfig) {
		cfg.seedSource = src
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithClock replaces time.Now in every service
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.now = now
	}
}

// WithIDGenerator replaces the task id generator
func WithIDGenerator(newID func() string) Option {
	return func(cfg *appConfig) {
		cfg.newID = newID
	}
}
