package rest

import (
	"github.com/aretw0/introspection"
)

// ClientState exposes adapter configuration for observability. The token
// stays out of it.
type ClientState struct {
	BaseURL string `json:"base_url"`
	Timeout string `json:"timeout"`
}

// State implements introspection.Introspectable.
func (c *Client) State() any {
	return ClientState{
		BaseURL: c.baseURL,
		Timeout: c.http.Timeout.String(),
	}
}

// ComponentType implements introspection.Component.
func (c *Client) ComponentType() string {
	return "rest"
}

var _ introspection.Introspectable = (*Client)(nil)
var _ introspection.Component = (*Client)(nil)
