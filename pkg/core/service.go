package core

import (
	"context"
	"fmt"
)

// Service is the node operations façade. Every operation accepts its target
// polymorphically (a Ref, a bare string classified by shape, a Node or a
// *Node), resolves it to a canonical id exactly once, then issues a single
// gateway call. The service holds no shared mutable state; concurrent calls
// are independent resolve-then-act sequences.
type Service struct {
	gateway  Gateway
	resolver *Resolver
	rootID   string
}

// NewService creates a Service over the gateway. An empty rootID scopes path
// and short-id resolution to the account's top-level root.
func NewService(gateway Gateway, rootID string) *Service {
	if rootID == "" {
		rootID = RootID
	}
	return &Service{
		gateway:  gateway,
		resolver: NewResolver(gateway, rootID),
		rootID:   rootID,
	}
}

// Resolve turns any accepted target form into a canonical node id without
// performing the operation. Exposed so callers can pin a target once and
// reuse the id.
func (s *Service) Resolve(ctx context.Context, target any) (string, error) {
	ref, err := ClassifyTarget(target)
	if err != nil {
		return "", err
	}
	return s.resolver.Resolve(ctx, ref)
}

// GetNode retrieves a single node.
func (s *Service) GetNode(ctx context.Context, target any) (Node, error) {
	id, err := s.Resolve(ctx, target)
	if err != nil {
		return Node{}, err
	}
	return s.gateway.GetNode(ctx, id)
}

// ListNodes returns the children of parent in priority order.
func (s *Service) ListNodes(ctx context.Context, parent any) ([]Node, error) {
	id, err := s.Resolve(ctx, parent)
	if err != nil {
		return nil, err
	}
	return s.gateway.ListChildren(ctx, id)
}

// CreateNode inserts a new child under parent and returns the created node.
// An index position is validated against the parent's current child count
// before anything is written; out of range fails, never clamps.
func (s *Service) CreateNode(ctx context.Context, parent any, req CreateRequest) (Node, error) {
	id, err := s.Resolve(ctx, parent)
	if err != nil {
		return Node{}, err
	}
	if index, ok := req.Position.Index(); ok {
		if index < 0 {
			return Node{}, fmt.Errorf("%w: negative position %d", ErrValidation, index)
		}
		children, err := s.gateway.ListChildren(ctx, id)
		if err != nil {
			return Node{}, err
		}
		if index > len(children) {
			return Node{}, fmt.Errorf("%w: position %d out of range for %d children",
				ErrValidation, index, len(children))
		}
	}
	return s.gateway.CreateNode(ctx, id, req)
}

// CreateChildTop creates a child before all existing children of parent.
func (s *Service) CreateChildTop(ctx context.Context, parent any, name, note string) (Node, error) {
	return s.CreateNode(ctx, parent, CreateRequest{Name: name, Note: note, Position: PositionTop})
}

// CreateChildBottom creates a child after all existing children of parent.
func (s *Service) CreateChildBottom(ctx context.Context, parent any, name, note string) (Node, error) {
	return s.CreateNode(ctx, parent, CreateRequest{Name: name, Note: note, Position: PositionBottom})
}

// UpdateNode patches the set fields of req onto the target node and returns
// the updated node.
func (s *Service) UpdateNode(ctx context.Context, target any, req UpdateRequest) (Node, error) {
	id, err := s.Resolve(ctx, target)
	if err != nil {
		return Node{}, err
	}
	return s.gateway.UpdateNode(ctx, id, req)
}

// CompleteNode marks the target node completed.
func (s *Service) CompleteNode(ctx context.Context, target any) (Node, error) {
	id, err := s.Resolve(ctx, target)
	if err != nil {
		return Node{}, err
	}
	return s.gateway.CompleteNode(ctx, id)
}

// UncompleteNode clears the target node's completed mark.
func (s *Service) UncompleteNode(ctx context.Context, target any) (Node, error) {
	id, err := s.Resolve(ctx, target)
	if err != nil {
		return Node{}, err
	}
	return s.gateway.UncompleteNode(ctx, id)
}

// DeleteNode removes the target node and its entire subtree. Deleting an
// already-deleted node fails with whatever the service returns, typically
// not-found; nothing is retried or rolled back.
func (s *Service) DeleteNode(ctx context.Context, target any) error {
	id, err := s.Resolve(ctx, target)
	if err != nil {
		return err
	}
	return s.gateway.DeleteNode(ctx, id)
}

// FindNodeByPath treats path as a path unconditionally, skipping
// classification, and descends from parent. Nodes whose names look like ids
// stay reachable this way.
func (s *Service) FindNodeByPath(ctx context.Context, path string, parent any) (Node, error) {
	parentID, err := s.Resolve(ctx, parent)
	if err != nil {
		return Node{}, err
	}
	id, err := s.resolver.ResolveFrom(ctx, parentID, ByPath(path))
	if err != nil {
		return Node{}, err
	}
	return s.gateway.GetNode(ctx, id)
}
