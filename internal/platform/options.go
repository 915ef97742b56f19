package platform

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/workflowy/pkg/core"
)

// options holds the internal configuration for the client.
type options struct {
	token      string
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	gateway    core.Gateway
	logger     *slog.Logger
	rootID     string
}

// Option defines a functional option for configuring the client.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{}
}

// WithToken sets the API token explicitly. An explicit token wins over the
// environment variable and the config file.
func WithToken(token string) Option {
	return func(o *options) {
		o.token = token
	}
}

// WithBaseURL overrides the service endpoint. Useful against a local stub.
func WithBaseURL(url string) Option {
	return func(o *options) {
		o.baseURL = url
	}
}

// WithTimeout bounds each request. Zero keeps the adapter default.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithHTTPClient substitutes the HTTP transport wholesale, timeout included.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets the logger for the client.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithGateway allows injecting a custom remote gateway (e.g. a fake).
// If provided, no REST adapter is constructed and no token is required.
func WithGateway(gateway core.Gateway) Option {
	return func(o *options) {
		o.gateway = gateway
	}
}

// WithRoot scopes path and short-id resolution to the given node id instead
// of the account's top-level root.
func WithRoot(rootID string) Option {
	return func(o *options) {
		o.rootID = rootID
	}
}
