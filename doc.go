// Package workflowy is the Composition Root for the Workflowy client.
//
// It connects the core tree operations (Domain Layer) with the transport
// adapter (REST) using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// A Workflowy account is one big tree. The client treats every operation as
// "resolve, then act": callers address nodes by canonical id, by the short
// id found at the end of app URLs, by a slash-separated path of names, or
// with a node value they already hold, and each operation first turns that
// reference into exactly one canonical id before touching the node.
//
// Features:
//
//   - **Hexagonal Architecture**: Core domain is isolated from transport details.
//   - **Reference Resolution**: Canonical ids, short ids, name paths and node
//     values all converge on the same operations.
//   - **Honest Errors**: Sentinel errors (ErrNotFound, ErrAmbiguous, ErrAuth...)
//     that survive wrapping, with carriers for match lists and raw statuses.
//   - **Default Adapter (REST)**: Out-of-the-box transport for the public HTTP
//     API with token discovery from the environment or a config file.
//   - **Extensible**: Designed to support other transports via `core.Gateway`.
//
// Usage:
//
//	// Initialize the client with functional options
//	client, err := workflowy.New(
//		workflowy.WithToken(token),
//		workflowy.WithLogger(logger),
//	)
//
//	// Fetch a node by path
//	node, err := client.GetNode(ctx, "Projects/Garden")
package workflowy
