package platform

import (
	"fmt"

	"github.com/aretw0/workflowy/pkg/adapters/rest"
	"github.com/aretw0/workflowy/pkg/core"
)

// New wires a core.Service from options. Unless a gateway is injected, it
// discovers the API token (explicit > environment > config file) and
// constructs the REST adapter; a missing token fails here, before any
// network access.
func New(opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	gateway := o.gateway
	if gateway == nil {
		token := DiscoverToken(o.token)
		if token == "" {
			path, _ := ConfigFile()
			return nil, fmt.Errorf("%w: no API token found; pass one explicitly, set %s, or create %s",
				core.ErrAuth, EnvToken, path)
		}

		client, err := rest.NewClient(rest.Config{
			BaseURL:    o.baseURL,
			Token:      token,
			Timeout:    o.timeout,
			HTTPClient: o.httpClient,
			Logger:     o.logger,
		})
		if err != nil {
			return nil, err
		}
		gateway = client
	}

	return core.NewService(gateway, o.rootID), nil
}
