package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ClientConfig holds HTTP transport configuration
type ClientConfig struct {
	// Timeout bounds a whole request; zero means no timeout
	Timeout   time.Duration
	UserAgent string
}

// DefaultConfig returns default HTTP transport configuration
func DefaultConfig() ClientConfig {
	return ClientConfig{
		UserAgent: "poke-viewer/1.0",
	}
}

// HTTPTransport implements Transport on top of net/http
type HTTPTransport struct {
	client *http.Client
	config ClientConfig
}

// NewHTTPTransport creates a new HTTP transport
func NewHTTPTransport(config ClientConfig) *HTTPTransport {
	if config.UserAgent == "" {
		config.UserAgent = DefaultConfig().UserAgent
	}

	return &HTTPTransport{
		client: &http.Client{
			Timeout: config.Timeout,
		},
		config: config,
	}
}

// Get implements the Transport interface
func (t *HTTPTransport) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", t.config.UserAgent)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}
