package cli

import (
	"context"

	"github.com/thenoetrevino/tareas/internal/app"
)

type contextKey string

const appKey contextKey = "app"

// WithApp returns a context carrying an existing App. Commands run with it
// use that App instead of opening the configured database.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns a CLI for the App stored by WithApp, or a fresh
// one built from the user's configuration.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
			return &CLI{App: a}, nil
		}
	} else {
		ctx = context.Background()
	}
	return NewCLI(ctx)
}
