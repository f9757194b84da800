package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"
)

const (
	// DefaultListID is the special ID for the user's default list.
	DefaultListID = "@default"

	// OAuthClientFile and TokenFile live in the credentials directory.
	OAuthClientFile = "oauth_client.json"
	TokenFile       = "token.json"

	// APITimeout bounds a single API call when no timeout is configured.
	APITimeout = 5 * time.Second

	tasksScope = "https://www.googleapis.com/auth/tasks.readonly"
)

// GoogleTasksOptions configures NewGoogleTasksSource.
type GoogleTasksOptions struct {
	ClientPath string
	TokenPath  string
	ListID     string
	MaxResults int64
	Timeout    time.Duration
}

// GoogleTasksSource seeds from the open tasks of a Google Tasks list.
type GoogleTasksSource struct {
	svc        *tasks.Service
	listID     string
	maxResults int64
	timeout    time.Duration
}

// NewGoogleTasksSource loads the OAuth client and token from disk.
func NewGoogleTasksSource(ctx context.Context, opts GoogleTasksOptions) (*GoogleTasksSource, error) {
	clientJSON, err := os.ReadFile(opts.ClientPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", OAuthClientFile, err)
	}

	oauthConfig, err := google.ConfigFromJSON(clientJSON, tasksScope)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", OAuthClientFile, err)
	}

	tokenData, err := os.ReadFile(opts.TokenPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", TokenFile, err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", TokenFile, err)
	}

	// Token source refreshes automatically
	httpClient := oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, &token))

	return newGoogleTasksSource(ctx, opts, option.WithHTTPClient(httpClient))
}

// NewGoogleTasksSourceWithHTTPClient skips OAuth and talks to endpoint with client.
func NewGoogleTasksSourceWithHTTPClient(ctx context.Context, client *http.Client, endpoint string, opts GoogleTasksOptions) (*GoogleTasksSource, error) {
	return newGoogleTasksSource(ctx, opts, option.WithHTTPClient(client), option.WithEndpoint(endpoint))
}

func newGoogleTasksSource(ctx context.Context, opts GoogleTasksOptions, clientOpts ...option.ClientOption) (*GoogleTasksSource, error) {
	svc, err := tasks.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}

	listID := opts.ListID
	if listID == "" {
		listID = DefaultListID
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = APITimeout
	}
	maxResults := opts.MaxResults
	if maxResults <= 0 || maxResults > 100 {
		maxResults = 100
	}

	return &GoogleTasksSource{
		svc:        svc,
		listID:     listID,
		maxResults: maxResults,
		timeout:    timeout,
	}, nil
}

// Fetch implements Source. Only open tasks are returned, in API order.
func (s *GoogleTasksSource) Fetch(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.svc.Tasks.List(s.listID).
		MaxResults(s.maxResults).
		ShowCompleted(false).
		ShowDeleted(false).
		ShowHidden(false).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapError(err)
	}

	out := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		out = append(out, item.Title)
	}
	return out, nil
}

// wrapError turns API failures into messages a user can act on.
func wrapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("google tasks request timed out: %w", err)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %d: google tasks token expired or revoked", ErrFetchFailed, apiErr.Code)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %d: google tasks list not found", ErrFetchFailed, apiErr.Code)
		default:
			return fmt.Errorf("%w: %d", ErrFetchFailed, apiErr.Code)
		}
	}

	return fmt.Errorf("failed to list google tasks: %w", err)
}
