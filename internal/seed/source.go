// Package seed provides the sources that populate an empty board on first load.
package seed

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/thenoetrevino/tareas/internal/config"
)

// Source returns an ordered list of short task descriptions.
type Source interface {
	Fetch(ctx context.Context) ([]string, error)
}

var (
	// ErrFetchFailed is returned when the feed answers with a non-2xx status
	ErrFetchFailed = errors.New("fetch failed")

	// ErrUnknownSource is returned for an unrecognised seed.source value
	ErrUnknownSource = errors.New("unknown seed source")
)

// None is a Source that never yields anything.
type None struct{}

// Fetch implements Source.
func (None) Fetch(context.Context) ([]string, error) { return nil, nil }

// Static is a Source backed by a fixed list, such as seed.items in the config file.
type Static []string

// Fetch implements Source.
func (s Static) Fetch(context.Context) ([]string, error) {
	out := make([]string, len(s))
	copy(out, s)
	return out, nil
}

// FromConfig builds the Source selected by cfg.Seed.Source.
func FromConfig(ctx context.Context, cfg *config.Config) (Source, error) {
	switch cfg.Seed.Source {
	case config.SeedSourceNone:
		return None{}, nil
	case config.SeedSourceStatic:
		return Static(cfg.Seed.Items), nil
	case config.SeedSourceHTTP, "":
		return NewHTTPSource(cfg.Seed.URL, cfg.Seed.Timeout), nil
	case config.SeedSourceGoogleTasks:
		dir := cfg.Seed.GoogleTasks.CredentialsDir
		if dir == "" {
			configDir, err := config.Dir()
			if err != nil {
				return nil, fmt.Errorf("failed to resolve config dir: %w", err)
			}
			dir = configDir
		}
		return NewGoogleTasksSource(ctx, GoogleTasksOptions{
			ClientPath: filepath.Join(dir, OAuthClientFile),
			TokenPath:  filepath.Join(dir, TokenFile),
			ListID:     cfg.Seed.GoogleTasks.ListID,
			MaxResults: int64(cfg.Seed.Limit),
			Timeout:    cfg.Seed.Timeout,
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Seed.Source)
	}
}
