package rest

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/aretw0/workflowy/pkg/core"
)

const (
	// DefaultBaseURL is the service's public API endpoint.
	DefaultBaseURL = "https://workflowy.com/api/v1"

	// DefaultTimeout bounds each request when no custom HTTP client is set.
	DefaultTimeout = 10 * time.Second
)

// Config holds the configuration for the REST gateway.
type Config struct {
	// BaseURL overrides the service endpoint. Defaults to DefaultBaseURL.
	BaseURL string

	// Token authorizes every request. Required.
	Token string

	// Timeout bounds each request when HTTPClient is nil.
	// Defaults to DefaultTimeout.
	Timeout time.Duration

	// HTTPClient substitutes the transport wholesale, timeout included.
	HTTPClient *http.Client

	// Logger enables debug request logging. The token is never logged.
	Logger *slog.Logger
}

// Validate checks the configuration before any network access.
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("%w: no API token configured", core.ErrAuth)
	}
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil {
			return fmt.Errorf("%w: base URL %q: %v", core.ErrValidation, c.BaseURL, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: base URL %q must be absolute", core.ErrValidation, c.BaseURL)
		}
	}
	return nil
}
