package workflowy

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/workflowy/internal/platform"
	"github.com/aretw0/workflowy/pkg/core"
)

// --- Types ---

// Node is a public alias for the core node model.
type Node = core.Node

// Position is a public alias for the sibling placement of a new node.
type Position = core.Position

// CreateRequest is a public alias for the node creation request.
type CreateRequest = core.CreateRequest

// UpdateRequest is a public alias for the partial node update request.
type UpdateRequest = core.UpdateRequest

// Ref is a public alias for the closed set of reference forms.
type Ref = core.Ref

// Service is a public alias for the node operations service.
type Service = core.Service

// AmbiguousError is a public alias for the multi-match resolution error.
type AmbiguousError = core.AmbiguousError

// StatusError is a public alias for the raw remote status error.
type StatusError = core.StatusError

// RootID is the reserved identifier of the account's root node.
const RootID = core.RootID

// EnvToken is the environment variable consulted for the API token.
const EnvToken = platform.EnvToken

// --- Errors ---

var (
	ErrAuth        = core.ErrAuth
	ErrNotFound    = core.ErrNotFound
	ErrAmbiguous   = core.ErrAmbiguous
	ErrValidation  = core.ErrValidation
	ErrRateLimited = core.ErrRateLimited
	ErrClient      = core.ErrClient
	ErrServer      = core.ErrServer
)

// --- References ---

// ByID references a node by canonical id.
func ByID(id string) Ref { return core.ByID(id) }

// ByShortID references a node by the 12-hex fragment from its app URL.
func ByShortID(fragment string) Ref { return core.ByShortID(fragment) }

// ByPath references a node by a slash-separated path of exact names.
func ByPath(path string) Ref { return core.ByPath(path) }

// ByNode references an already-fetched node directly.
func ByNode(n Node) Ref { return core.ByNode(n) }

// Classify turns a bare string target into its reference form by shape.
func Classify(target string) (Ref, error) { return core.Classify(target) }

// --- Positions ---

var (
	// PositionTop places a new node before its siblings.
	PositionTop = core.PositionTop
	// PositionBottom places a new node after its siblings.
	PositionBottom = core.PositionBottom
)

// PositionAt places a new node at a zero-based index among its siblings.
func PositionAt(index int) Position { return core.PositionAt(index) }

// --- URLs ---

// NodeURL returns the app URL that opens the node.
func NodeURL(id string) (string, error) { return core.NodeURL(id) }

// ShortID returns the 12-hex URL fragment of a canonical id.
func ShortID(id string) (string, error) { return core.ShortID(id) }

// --- Configuration ---

// Option defines a functional option for configuring the client.
type Option = platform.Option

// WithToken sets the API token explicitly, bypassing discovery.
func WithToken(token string) Option {
	return platform.WithToken(token)
}

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(url string) Option {
	return platform.WithBaseURL(url)
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return platform.WithTimeout(d)
}

// WithHTTPClient supplies the HTTP client used for requests.
func WithHTTPClient(client *http.Client) Option {
	return platform.WithHTTPClient(client)
}

// WithLogger sets the logger for the transport adapter.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithGateway allows injecting a custom transport adapter.
func WithGateway(gateway core.Gateway) Option {
	return platform.WithGateway(gateway)
}

// WithRoot scopes path and short-id resolution to a different root node.
func WithRoot(id string) Option {
	return platform.WithRoot(id)
}

// --- Factory ---

// New creates a new Workflowy Service.
func New(opts ...Option) (*core.Service, error) {
	return platform.New(opts...)
}

// ConfigFile returns the path of the fallback token file.
func ConfigFile() (string, error) {
	return platform.ConfigFile()
}
