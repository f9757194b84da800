package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPSource reads a dummyjson-shaped todo feed: {"todos":[{"todo":"..."}]}.
type HTTPSource struct {
	URL     string
	Timeout time.Duration
	Client  *http.Client
}

// NewHTTPSource creates an HTTPSource using the default HTTP client.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{URL: url, Timeout: timeout, Client: http.DefaultClient}
}

type todoFeed struct {
	Todos []struct {
		Todo string `json:"todo"`
	} `json:"todos"`
}

// Fetch implements Source.
func (s *HTTPSource) Fetch(ctx context.Context) ([]string, error) {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build seed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch seed tasks: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %d", ErrFetchFailed, resp.StatusCode)
	}

	var feed todoFeed
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to decode seed feed: %w", err)
	}

	out := make([]string, 0, len(feed.Todos))
	for _, t := range feed.Todos {
		out = append(out, t.Todo)
	}
	return out, nil
}
