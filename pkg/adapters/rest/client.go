package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/aretw0/workflowy/pkg/core"
)

// Client implements core.Gateway against the service's REST API. It performs
// no retries and holds no state beyond its configuration; cancellation and
// deadlines arrive through the request context and the HTTP client timeout.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *slog.Logger
}

var _ core.Gateway = (*Client)(nil)

// NewClient creates a REST gateway from config. It fails before any network
// access when the config is unusable, missing token included.
func NewClient(config Config) (*Client, error) {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	return &Client{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		token:   config.Token,
		http:    httpClient,
		logger:  config.Logger,
	}, nil
}

// GetNode retrieves a single node by canonical id.
func (c *Client) GetNode(ctx context.Context, id string) (core.Node, error) {
	if id == core.RootID {
		// The service cannot fetch the root; synthesize a representation
		// sufficient for operations that need a parent.
		now := time.Now().Unix()
		return core.Node{ID: core.RootID, Name: "Home", CreatedAt: now, ModifiedAt: now}, nil
	}

	var out getNodeResponse
	if err := c.do(ctx, http.MethodGet, "/nodes/"+id, nil, &out); err != nil {
		return core.Node{}, err
	}
	return out.Node, nil
}

// ListChildren returns the children of parentID sorted by priority.
func (c *Client) ListChildren(ctx context.Context, parentID string) ([]core.Node, error) {
	// The API is inconsistent about the root: creating under it takes a
	// null parent, listing it takes the literal string "None".
	effective := parentID
	if parentID == core.RootID {
		effective = "None"
	}
	query := url.Values{}
	query.Set("parent_id", effective)

	var out listNodesResponse
	if err := c.do(ctx, http.MethodGet, "/nodes?"+query.Encode(), nil, &out); err != nil {
		return nil, err
	}

	nodes := out.Nodes
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Priority < nodes[j].Priority
	})
	return nodes, nil
}

// CreateNode inserts a new child under parentID. The service answers with
// the new id only, so the created node is fetched back in a follow-up read.
func (c *Client) CreateNode(ctx context.Context, parentID string, req core.CreateRequest) (core.Node, error) {
	payload := createNodePayload{
		Name:     req.Name,
		Position: req.Position,
	}
	if parentID != core.RootID {
		payload.ParentID = &parentID
	}
	if req.Note != "" {
		payload.Note = &req.Note
	}

	var out createNodeResponse
	if err := c.do(ctx, http.MethodPost, "/nodes", payload, &out); err != nil {
		return core.Node{}, err
	}
	return c.GetNode(ctx, out.ItemID)
}

// UpdateNode patches the set fields onto the node, then fetches it back.
func (c *Client) UpdateNode(ctx context.Context, id string, req core.UpdateRequest) (core.Node, error) {
	payload := updateNodePayload{
		Name:     req.Name,
		Note:     req.Note,
		Priority: req.Priority,
		Data:     req.Data,
	}
	if err := c.do(ctx, http.MethodPost, "/nodes/"+id, payload, nil); err != nil {
		return core.Node{}, err
	}
	return c.GetNode(ctx, id)
}

// CompleteNode marks the node completed, then fetches it back.
func (c *Client) CompleteNode(ctx context.Context, id string) (core.Node, error) {
	if err := c.do(ctx, http.MethodPost, "/nodes/"+id+"/complete", nil, nil); err != nil {
		return core.Node{}, err
	}
	return c.GetNode(ctx, id)
}

// UncompleteNode clears the node's completed mark, then fetches it back.
func (c *Client) UncompleteNode(ctx context.Context, id string) (core.Node, error) {
	if err := c.do(ctx, http.MethodPost, "/nodes/"+id+"/uncomplete", nil, nil); err != nil {
		return core.Node{}, err
	}
	return c.GetNode(ctx, id)
}

// DeleteNode removes the node and its subtree.
func (c *Client) DeleteNode(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/nodes/"+id, nil, nil)
}

// do executes one request against the service. Non-2xx statuses become
// StatusError so the core taxonomy applies; transport failures are wrapped
// and propagate unchanged.
func (c *Client) do(ctx context.Context, method, path string, body any, result any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if c.logger != nil {
		c.logger.Debug("request completed",
			"method", method,
			"path", path,
			"status", resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &core.StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(respBody)),
		}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
