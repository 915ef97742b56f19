package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	RootID      string `json:"root_id"`
	GatewayType string `json:"gateway_type"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	gatewayType := "unknown"
	if s.gateway != nil {
		gatewayType = "gateway"
		// Report the concrete adapter when it identifies itself.
		if comp, ok := s.gateway.(introspection.Component); ok {
			gatewayType = comp.ComponentType()
		}
	}

	return ServiceState{
		RootID:      s.rootID,
		GatewayType: gatewayType,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
