package core

import "context"

// TreeReader is the read-access capability resolution depends on. Keeping it
// separate from Gateway lets the resolver prove it never mutates anything.
type TreeReader interface {
	// GetNode retrieves a single node by canonical id.
	GetNode(ctx context.Context, id string) (Node, error)

	// ListChildren returns the children of the given parent id, in priority
	// order. The reserved RootID lists the account's top-level nodes.
	ListChildren(ctx context.Context, parentID string) ([]Node, error)
}

// Gateway defines the full contract with the remote service. Adhering to
// this interface keeps the core independent of the wire mechanics (REST,
// fakes in tests, a future batch transport).
type Gateway interface {
	TreeReader

	// CreateNode inserts a new child under the parent at the requested
	// position and returns the created node.
	CreateNode(ctx context.Context, parentID string, req CreateRequest) (Node, error)

	// UpdateNode patches the set fields of req onto the node and returns
	// the updated node.
	UpdateNode(ctx context.Context, id string, req UpdateRequest) (Node, error)

	// CompleteNode marks the node completed and returns it.
	CompleteNode(ctx context.Context, id string) (Node, error)

	// UncompleteNode clears the node's completed mark and returns it.
	UncompleteNode(ctx context.Context, id string) (Node, error)

	// DeleteNode removes the node and its entire subtree.
	DeleteNode(ctx context.Context, id string) error
}
